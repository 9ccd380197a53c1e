package composite

import (
	"slices"
	"sync"
)

// SyncComposite Composite 的并发安全包装
//
// 所有方法都使用读写锁保护被包装分支的子节点列表和父引用。
// 锁只覆盖当前节点，嵌套的分支需要各自包装。
// Operator 在每一层读取子节点快照，不保证跨层的原子视图。
//
// Add 与 Remove 对子节点父引用的修改由 linkMu 串行化，子节点的父引用
// 总是与最后一次完成的 Add/Remove 一致。
type SyncComposite struct {
	mu     sync.RWMutex
	linkMu sync.Mutex // 串行化成员变更与父引用更新，不与 mu 嵌套持有
	inner  *Composite
}

// NewSync 包装分支，c 为 nil 时创建新的空分支
func NewSync(c *Composite) *SyncComposite {
	if c == nil {
		c = New()
	}
	return &SyncComposite{inner: c}
}

// Unwrap 返回被包装的分支，调用方需自行保证不与包装并发使用
func (s *SyncComposite) Unwrap() *Composite {
	return s.inner
}

// IsComposite 实现 Component 接口
func (s *SyncComposite) IsComposite() bool {
	return true
}

// Parent 实现 Component 接口
func (s *SyncComposite) Parent() Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Parent()
}

// SetParent 实现 Component 接口
func (s *SyncComposite) SetParent(p Container) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.SetParent(p)
}

// Add 实现 Container 接口
func (s *SyncComposite) Add(other Component) {
	if other == nil {
		return
	}

	s.linkMu.Lock()
	defer s.linkMu.Unlock()

	s.mu.Lock()
	s.inner.children = append(s.inner.children, other)
	track := s.inner.trackParent
	s.mu.Unlock()

	// 父引用指向包装而不是内部分支，在 mu 外设置避免与子节点的锁交叉
	if track {
		other.SetParent(s)
	}
}

// Remove 实现 Container 接口
func (s *SyncComposite) Remove(other Component) error {
	s.linkMu.Lock()
	defer s.linkMu.Unlock()

	s.mu.Lock()
	idx := s.inner.IndexOf(other)
	if idx < 0 {
		desc := s.inner.String()
		s.mu.Unlock()
		return &MembershipError{Parent: "sync " + desc, Child: describe(other)}
	}
	s.inner.children = slices.Delete(s.inner.children, idx, idx+1)
	s.mu.Unlock()

	other.SetParent(nil)
	return nil
}

// Children 实现 Container 接口
func (s *SyncComposite) Children() []Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Children()
}

// Len 返回直接子节点数量
func (s *SyncComposite) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

// Operator 实现 Component 接口
func (s *SyncComposite) Operator() (string, error) {
	return Render(s)
}

// String 实现 fmt.Stringer
func (s *SyncComposite) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return "sync " + s.inner.String()
}

var _ Container = (*SyncComposite)(nil)
