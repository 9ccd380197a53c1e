// Package composite 提供组合模式（Composite Pattern）的树形组件实现
//
// # Overview
//
// 组合模式让单个对象（叶子）与对象集合（分支）暴露同一接口，
// 调用方无需区分具体类型即可统一处理：
//   - [Component]: 所有节点共享的最小接口（Operator、IsComposite、父引用）
//   - [Container]: 子节点管理接口（Add、Remove、Children），仅分支实现
//   - [Leaf]: 终端节点，Operator 返回自身标签
//   - [Composite]: 内部节点，Operator 按插入顺序聚合子节点结果
//   - [SyncComposite]: Composite 的 RWMutex 包装，用于跨 goroutine 共享
//
// # Interface Hierarchy
//
//	Component  - 所有节点（Leaf、Composite）
//	Container  - 可包含子节点的节点（Composite、SyncComposite）
//
// 叶子不提供 Add/Remove。调用方先通过 [Component.IsComposite] 或
// [AsContainer] 判断，再执行变更操作。
//
// # Usage
//
//	tree := composite.New()
//
//	branch1 := composite.New()
//	branch1.Add(composite.NewLeaf(composite.WithLabel("a")))
//	branch1.Add(composite.NewLeaf(composite.WithLabel("b")))
//
//	branch2 := composite.New()
//	branch2.Add(composite.NewLeaf(composite.WithLabel("c")))
//
//	tree.Add(branch1)
//	tree.Add(branch2)
//
//	out, err := tree.Operator()
//	// out == "Branch(Branch(a+b)+Branch(c))"
//
// # Traversal
//
// [Render]、[Walk]、[Count]、[Depth] 使用显式栈的迭代深度优先遍历，
// 不依赖调用栈深度。遇到环（节点成为自身祖先）时返回 [ErrCycle]，
// 同一子树被多个父节点共享不算环。
//
// # Parent Reference
//
// 默认情况下 Add 不设置子节点的父引用，Remove 会将其清空。
// 需要一致的父引用时使用 [WithParentTracking]。
//
// # Thread Safety
//
// [Composite] 不是并发安全的。需要并发访问时使用 [NewSync] 包装，
// 注意包装只保护该节点自身的子节点列表。
package composite
