// Package layout 从声明式描述构建组件树
//
// 描述文件支持 TOML、YAML、JSON 三种格式，结构相同：
//
//	name = "tree"
//
//	[[children]]
//	name = "branch1"
//	  [[children.children]]
//	  label = "a"
//	  [[children.children]]
//	  label = "b"
//
//	[[children]]
//	kind = "leaf"
//	label = "c"
//
// kind 为空时，带 name 或 children（可以为空列表）的视为 branch，否则视为 leaf。
// 空分支渲染为 Branch()。
//
// 用法：
//
//	n, err := layout.Load("tree.toml")
//	if err != nil {
//	    return err
//	}
//	root, err := layout.Build(n)
//	out, err := root.Operator()
//
// 本包只做单向构建，不提供从组件树到描述文件的编码。
package layout
