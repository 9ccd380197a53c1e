package composite

import (
	"slices"
	"strings"
)

// frame 遍历栈帧：节点、其子节点快照、下一个待访问的子节点下标
type frame struct {
	node     Component
	children []Component
	next     int
}

// visitor 遍历回调
//
// enter 在进入每个节点时调用（前序），返回 false 表示不展开其子节点。
// leave 仅对已展开的分支调用（后序）。
type visitor struct {
	enter func(c Component, depth int) (bool, error)
	leave func(c Component, depth int) error
}

// traverse 使用显式栈对组件树做迭代深度优先遍历
//
// onPath 记录当前路径上的分支，子节点已在路径上时返回 *CycleError。
// 不同分支共享同一子树是允许的，会被访问多次。
func traverse(root Component, v visitor) error {
	if root == nil {
		return nil
	}

	descend, err := v.enter(root, 0)
	if err != nil {
		return err
	}
	ct, ok := AsContainer(root)
	if !ok || !descend {
		return nil
	}

	onPath := map[Component]struct{}{root: {}}
	stack := []frame{{node: root, children: ct.Children()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 子节点已全部访问，回溯
		if top.next >= len(top.children) {
			node := top.node
			stack = stack[:len(stack)-1]
			delete(onPath, node)
			if v.leave != nil {
				if err := v.leave(node, len(stack)); err != nil {
					return err
				}
			}
			continue
		}

		child := top.children[top.next]
		top.next++
		depth := len(stack)

		cc, isContainer := AsContainer(child)
		if isContainer {
			if _, seen := onPath[child]; seen {
				return &CycleError{Node: describe(child), Depth: depth}
			}
		}

		descend, err := v.enter(child, depth)
		if err != nil {
			return err
		}
		if !isContainer || !descend {
			continue
		}

		onPath[child] = struct{}{}
		stack = append(stack, frame{node: child, children: cc.Children()})
	}

	return nil
}

// Render 计算任意组件的 Operator 结果
//
// 叶子（非 Container）调用其自身的 Operator，分支统一格式化为
// Branch(c1+c2+...+cn)。结果与递归定义一致，但不受调用栈深度限制。
func Render(root Component) (string, error) {
	var (
		out   string
		parts [][]string
	)

	emit := func(s string) {
		if len(parts) == 0 {
			out = s
			return
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], s)
	}

	err := traverse(root, visitor{
		enter: func(c Component, _ int) (bool, error) {
			if _, ok := AsContainer(c); ok {
				parts = append(parts, nil)
				return true, nil
			}
			s, err := c.Operator()
			if err != nil {
				return false, err
			}
			emit(s)
			return false, nil
		},
		leave: func(_ Component, _ int) error {
			s := "Branch(" + strings.Join(parts[len(parts)-1], "+") + ")"
			parts = parts[:len(parts)-1]
			emit(s)
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// Walk 按前序遍历组件树
//
// fn 返回 false 时跳过该节点的子节点，遍历继续。depth 从 0 开始。
func Walk(root Component, fn func(c Component, depth int) bool) error {
	return traverse(root, visitor{
		enter: func(c Component, depth int) (bool, error) {
			return fn(c, depth), nil
		},
	})
}

// Count 统计树中叶子与分支的数量（重复出现的节点按出现次数计）
func Count(root Component) (leaves, composites int, err error) {
	err = Walk(root, func(c Component, _ int) bool {
		if _, ok := AsContainer(c); ok {
			composites++
		} else {
			leaves++
		}
		return true
	})
	if err != nil {
		return 0, 0, err
	}
	return leaves, composites, nil
}

// Depth 返回树的高度，单个节点为 0
func Depth(root Component) (int, error) {
	maxDepth := 0
	err := Walk(root, func(_ Component, depth int) bool {
		maxDepth = max(maxDepth, depth)
		return true
	})
	if err != nil {
		return 0, err
	}
	return maxDepth, nil
}

// Lineage 返回从根到 c 的路径（沿父引用向上）
//
// 父引用出现重复时停止，防止异常情况下的无限循环。
func Lineage(c Component) []Component {
	var path []Component
	seen := make(map[Component]struct{})

	for cur := c; cur != nil; {
		if _, ok := seen[cur]; ok {
			break
		}
		seen[cur] = struct{}{}
		path = append(path, cur)

		p := cur.Parent()
		if p == nil {
			break
		}
		cur = p
	}

	slices.Reverse(path)
	return path
}
