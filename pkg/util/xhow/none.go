package xhow

// None 是从不缓存的存储器：Get 总是未命中，GetOrInit 每次都调用 compute。
//
// 用于显式关闭缓存、又想保留 [How] 的类型形状与等值语义的场景，
// 折叠规则与同宽度的 Cell/Atomic 一致，因此算出的哈希码可以互相比较。
type None[C Code] struct{}

// Clear 无操作。
func (None[C]) Clear() {}

// Get 总是返回未缓存。
func (None[C]) Get() (uint64, bool) {
	return 0, false
}

// GetOrInit 调用 compute 并返回折叠后的结果，不存储。
func (None[C]) GetOrInit(compute func() uint64) uint64 {
	return uint64(Fold[C](compute()))
}

// Fold 按宽度 C 折叠摘要。
func (*None[C]) Fold(code uint64) uint64 {
	return uint64(Fold[C](code))
}

// CloneTo 无操作。
func (*None[C]) CloneTo(*None[C]) {}
