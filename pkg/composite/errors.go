package composite

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 组件不是目标分支的子节点
	ErrNotFound = errors.New("component not found")

	// ErrCycle 树中存在环（节点是自身的祖先）
	ErrCycle = errors.New("cycle detected")
)

// MembershipError Remove 的目标不在子节点列表中
type MembershipError struct {
	// Parent 分支的描述（名称或类型）
	Parent string
	// Child 被移除组件的描述
	Child string
}

// Error 实现 error 接口
func (e *MembershipError) Error() string {
	return fmt.Sprintf("remove %s from %s: %v", e.Child, e.Parent, ErrNotFound)
}

// Unwrap 返回 ErrNotFound，支持 errors.Is
func (e *MembershipError) Unwrap() error {
	return ErrNotFound
}

// CycleError 遍历时检测到环
type CycleError struct {
	// Node 重复出现在当前路径上的节点描述
	Node string
	// Depth 检测到环时的路径深度
	Depth int
}

// Error 实现 error 接口
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s reappears at depth %d", ErrCycle, e.Node, e.Depth)
}

// Unwrap 返回 ErrCycle，支持 errors.Is
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// describe 返回组件的简短描述，用于错误信息
func describe(c Component) string {
	switch v := c.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", c)
	}
}
