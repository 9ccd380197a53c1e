package composite

// Component 组件最小接口
//
// Component 定义了树中每个节点都具备的能力。叶子和分支都实现此接口，
// 调用方可以在不知道具体类型的情况下调用 Operator。
type Component interface {
	// Operator 返回节点的运算结果
	// 叶子返回自身标签，分支返回 Branch(子节点结果以 + 连接)
	Operator() (string, error)

	// IsComposite 返回节点是否可以包含子节点
	IsComposite() bool

	// Parent 返回父节点，没有父节点时返回 nil
	Parent() Container

	// SetParent 设置父节点，不做任何校验
	SetParent(p Container)
}

// Container 子节点管理接口
//
// 只有可以包含子节点的组件才实现 Container。
// 叶子不实现此接口，因此对叶子的 Add/Remove 在编译期或类型断言时即可发现。
type Container interface {
	Component

	// Add 将组件追加到子节点列表末尾
	Add(c Component)

	// Remove 移除第一个匹配的子节点，并清空其父引用
	// 组件不在子节点列表中时返回 *MembershipError
	Remove(c Component) error

	// Children 返回子节点列表的副本
	Children() []Component
}

// Base 提供父引用的默认实现，方便嵌入
type Base struct {
	parent Container
}

// Parent 实现 Component 接口
func (b *Base) Parent() Container {
	return b.parent
}

// SetParent 实现 Component 接口
func (b *Base) SetParent(p Container) {
	b.parent = p
}

// IsComposite 默认实现，返回 false
func (b *Base) IsComposite() bool {
	return false
}

// AsContainer 返回组件的 Container 能力
//
// 仅当 c.IsComposite() 为 true 且 c 实现了 Container 时返回 true。
func AsContainer(c Component) (Container, bool) {
	if c == nil || !c.IsComposite() {
		return nil, false
	}
	ct, ok := c.(Container)
	return ct, ok
}
