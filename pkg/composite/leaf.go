package composite

// Leaf 终端节点
//
// Leaf 没有子节点，Operator 返回构造时分配的标签。
type Leaf struct {
	Base
	label string
}

// LeafOption Leaf 配置选项
type LeafOption func(*leafConfig)

type leafConfig struct {
	label   string
	labeler Labeler
}

// WithLabel 设置叶子标签，空字符串表示使用标签生成器
func WithLabel(label string) LeafOption {
	return func(c *leafConfig) {
		c.label = label
	}
}

// WithLabeler 设置标签生成器，仅在未指定标签时使用
func WithLabeler(l Labeler) LeafOption {
	return func(c *leafConfig) {
		c.labeler = l
	}
}

// NewLeaf 创建叶子节点
func NewLeaf(opts ...LeafOption) *Leaf {
	cfg := leafConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	label := cfg.label
	if label == "" && cfg.labeler != nil {
		label = cfg.labeler.Next()
	}
	if label == "" {
		label = DefaultLabeler().Next()
	}

	return &Leaf{label: label}
}

// Label 返回叶子标签
func (l *Leaf) Label() string {
	return l.label
}

// Operator 实现 Component 接口，返回叶子标签
func (l *Leaf) Operator() (string, error) {
	return l.label, nil
}

// String 实现 fmt.Stringer
func (l *Leaf) String() string {
	return "leaf " + l.label
}

var _ Component = (*Leaf)(nil)
