package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 节点类型
type Kind string

const (
	KindLeaf   Kind = "leaf"   // 叶子
	KindBranch Kind = "branch" // 分支
)

// ErrInvalid 描述不合法
var ErrInvalid = errors.New("invalid layout")

// Node 组件树的声明式描述
type Node struct {
	Kind     Kind    `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty"`
	Label    string  `toml:"label,omitempty" yaml:"label,omitempty" json:"label,omitempty"`
	Name     string  `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Children []*Node `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// Leaf 创建叶子描述
func Leaf(label string) *Node {
	return &Node{Kind: KindLeaf, Label: label}
}

// Branch 创建分支描述
func Branch(name string, children ...*Node) *Node {
	return &Node{Kind: KindBranch, Name: name, Children: children}
}

// ResolvedKind 返回节点的实际类型
//
// Kind 为空时，带 name 或声明了 children（包括空列表）的节点视为 branch，
// 否则视为 leaf。
func (n *Node) ResolvedKind() Kind {
	if n.Kind != "" {
		return Kind(strings.ToLower(string(n.Kind)))
	}
	if n.Name != "" || n.Children != nil {
		return KindBranch
	}
	return KindLeaf
}

// Validate 检查描述是否合法
//
// 错误信息包含节点路径，例如 root/children[1]/children[0]。
func (n *Node) Validate() error {
	return n.validate("root")
}

func (n *Node) validate(path string) error {
	if n == nil {
		return fmt.Errorf("%w: %s: empty node", ErrInvalid, path)
	}

	switch n.ResolvedKind() {
	case KindLeaf:
		if len(n.Children) > 0 {
			return fmt.Errorf("%w: %s: leaf cannot have children", ErrInvalid, path)
		}
		if n.Name != "" {
			return fmt.Errorf("%w: %s: leaf cannot have a name", ErrInvalid, path)
		}
	case KindBranch:
		if n.Label != "" {
			return fmt.Errorf("%w: %s: branch cannot have a label", ErrInvalid, path)
		}
		for i, child := range n.Children {
			if err := child.validate(fmt.Sprintf("%s/children[%d]", path, i)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalid, path, n.Kind)
	}

	return nil
}
