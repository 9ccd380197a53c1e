package composite

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Labeler 为未显式命名的叶子生成标签
type Labeler interface {
	// Next 返回下一个标签，不能为空
	Next() string
}

const defaultLabelPrefix = "Leaf"

var (
	defaultMu      sync.RWMutex
	defaultLabeler Labeler = NewSequenceLabeler(defaultLabelPrefix)
)

// DefaultLabeler 返回包级默认标签生成器，初始产生 Leaf1、Leaf2 ...
func DefaultLabeler() Labeler {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLabeler
}

// SetDefaultLabeler 替换包级默认标签生成器
//
// l 为 nil 时恢复为新的 Leaf 计数生成器（从 Leaf1 重新开始）。
func SetDefaultLabeler(l Labeler) {
	if l == nil {
		l = NewSequenceLabeler(defaultLabelPrefix)
	}
	defaultMu.Lock()
	defaultLabeler = l
	defaultMu.Unlock()
}

// SequenceLabeler 基于递增计数器的标签生成器
//
// 同一实例生成的标签在进程内唯一且可复现，并发安全。
type SequenceLabeler struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceLabeler 创建带前缀的计数标签生成器
func NewSequenceLabeler(prefix string) *SequenceLabeler {
	return &SequenceLabeler{prefix: prefix}
}

// Next 实现 Labeler 接口
func (l *SequenceLabeler) Next() string {
	return l.prefix + strconv.FormatUint(l.n.Add(1), 10)
}

// Reset 将计数器归零
func (l *SequenceLabeler) Reset() {
	l.n.Store(0)
}

// UUIDLabeler 基于随机 UUID 的标签生成器，适合跨进程唯一的场景
type UUIDLabeler struct {
	Prefix string
}

// Next 实现 Labeler 接口
func (l UUIDLabeler) Next() string {
	return l.Prefix + uuid.NewString()
}

// LabelerFunc 函数式标签生成器
type LabelerFunc func() string

// Next 实现 Labeler 接口
func (f LabelerFunc) Next() string {
	return f()
}
