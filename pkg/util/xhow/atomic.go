package xhow

import "sync/atomic"

// Atomic 是可跨 goroutine 共享的存储器。
//
// Get/GetOrInit 可并发调用。并发未命中时 compute 可能被执行多次，
// 最后一次写入生效；compute 是被哈希值的纯函数，所有写入的值相同。
// 前提是被哈希的值在此期间不被修改，这由 [How] 的访问方式保证：
// 修改必须经过 Mut/Set/Update，而它们不应与 Hash 并发。
//
// 无论 C 多宽，内部都用 atomic.Uint64 保存折叠后的值。
type Atomic[C Code] struct {
	code atomic.Uint64
}

// Clear 重置为未缓存。
func (a *Atomic[C]) Clear() {
	a.code.Store(0)
}

// Get 返回已缓存的哈希码。
func (a *Atomic[C]) Get() (uint64, bool) {
	n := a.code.Load()
	if n == 0 {
		return 0, false
	}
	return n, true
}

// GetOrInit 返回已缓存的哈希码，未缓存时调用 compute 并存储。
func (a *Atomic[C]) GetOrInit(compute func() uint64) uint64 {
	if n := a.code.Load(); n != 0 {
		return n
	}
	n := uint64(Fold[C](compute()))
	a.code.Store(n)
	return n
}

// Fold 按宽度 C 折叠摘要。
func (*Atomic[C]) Fold(code uint64) uint64 {
	return uint64(Fold[C](code))
}

// CloneTo 把当前缓存复制到 dst。
func (a *Atomic[C]) CloneTo(dst *Atomic[C]) {
	dst.code.Store(a.code.Load())
}
