package composite

import (
	"fmt"
	"slices"
)

// Composite 内部节点（分支）
//
// Composite 持有有序的子节点列表，保留插入顺序，允许重复。
// Operator 按顺序聚合子节点结果，格式为 Branch(c1+c2+...+cn)。
//
// Thread Safety: Composite 不是并发安全的，需要时使用 [NewSync]。
type Composite struct {
	Base

	name        string
	children    []Component
	trackParent bool
}

// Option Composite 配置选项
type Option func(*Composite)

// WithName 设置分支名称，仅用于诊断信息，不影响 Operator 输出
func WithName(name string) Option {
	return func(c *Composite) {
		c.name = name
	}
}

// WithParentTracking 让 Add 设置子节点的父引用
//
// 默认 Add 不修改父引用，只有 Remove 会将其清空。
func WithParentTracking() Option {
	return func(c *Composite) {
		c.trackParent = true
	}
}

// New 创建空分支
func New(opts ...Option) *Composite {
	c := &Composite{
		children: make([]Component, 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name 返回分支名称
func (c *Composite) Name() string {
	return c.name
}

// IsComposite 实现 Component 接口，始终返回 true
func (c *Composite) IsComposite() bool {
	return true
}

// ═══════════════════════════════════════════════════════════════════════════
// 子节点管理 (Container 接口实现)
// ═══════════════════════════════════════════════════════════════════════════

// Add 将组件追加到子节点列表末尾
//
// 不检查重复，也不检查环。nil 会被忽略。
func (c *Composite) Add(other Component) {
	if other == nil {
		return
	}
	c.children = append(c.children, other)
	if c.trackParent {
		other.SetParent(c)
	}
}

// Remove 移除第一个匹配的子节点，并清空其父引用
func (c *Composite) Remove(other Component) error {
	idx := c.IndexOf(other)
	if idx < 0 {
		return &MembershipError{Parent: c.String(), Child: describe(other)}
	}

	c.children = slices.Delete(c.children, idx, idx+1)
	other.SetParent(nil)
	return nil
}

// Children 返回子节点列表的副本
func (c *Composite) Children() []Component {
	return slices.Clone(c.children)
}

// Len 返回直接子节点数量
func (c *Composite) Len() int {
	return len(c.children)
}

// IndexOf 返回组件第一次出现的位置，不存在时返回 -1
func (c *Composite) IndexOf(other Component) int {
	if other == nil {
		return -1
	}
	for i, child := range c.children {
		if child == other {
			return i
		}
	}
	return -1
}

// Contains 检查组件是否是直接子节点
func (c *Composite) Contains(other Component) bool {
	return c.IndexOf(other) >= 0
}

// ═══════════════════════════════════════════════════════════════════════════
// 运算
// ═══════════════════════════════════════════════════════════════════════════

// Operator 实现 Component 接口
//
// 每次调用都会重新计算，代价与后代节点数量成正比。
// 树中存在环时返回 *CycleError。
func (c *Composite) Operator() (string, error) {
	return Render(c)
}

// String 实现 fmt.Stringer
func (c *Composite) String() string {
	if c.name != "" {
		return fmt.Sprintf("branch %q", c.name)
	}
	return fmt.Sprintf("branch(%d children)", len(c.children))
}

// 确保 Composite 实现了 Container 接口
var _ Container = (*Composite)(nil)
