package layout

import (
	"github.com/lwmacct/251215-go-pkg-composite/pkg/composite"
)

// BuildOption Build 配置选项
type BuildOption func(*buildConfig)

type buildConfig struct {
	labeler     composite.Labeler
	trackParent bool
}

// WithLabeler 为未指定 label 的叶子设置标签生成器
func WithLabeler(l composite.Labeler) BuildOption {
	return func(c *buildConfig) {
		c.labeler = l
	}
}

// WithParentTracking 构建的分支在 Add 时设置子节点父引用
func WithParentTracking() BuildOption {
	return func(c *buildConfig) {
		c.trackParent = true
	}
}

// Build 按描述构建组件树
//
// 先校验整个描述，再按子节点顺序构建。
func Build(n *Node, opts ...BuildOption) (composite.Component, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.build(n), nil
}

func (cfg *buildConfig) build(n *Node) composite.Component {
	if n.ResolvedKind() == KindLeaf {
		leafOpts := []composite.LeafOption{composite.WithLabel(n.Label)}
		if cfg.labeler != nil {
			leafOpts = append(leafOpts, composite.WithLabeler(cfg.labeler))
		}
		return composite.NewLeaf(leafOpts...)
	}

	branchOpts := []composite.Option{composite.WithName(n.Name)}
	if cfg.trackParent {
		branchOpts = append(branchOpts, composite.WithParentTracking())
	}
	branch := composite.New(branchOpts...)
	for _, child := range n.Children {
		branch.Add(cfg.build(child))
	}
	return branch
}
