package xhow

// Cell 是单 goroutine 使用的存储器，没有任何同步。
//
// 零值即未缓存。跨 goroutine 共享同一个 Cell 需要调用方自行加锁，
// 否则是数据竞争。
type Cell[C Code] struct {
	code C
}

// Clear 重置为未缓存。
func (c *Cell[C]) Clear() {
	c.code = 0
}

// Get 返回已缓存的哈希码。
func (c *Cell[C]) Get() (uint64, bool) {
	if c.code == 0 {
		return 0, false
	}
	return uint64(c.code), true
}

// GetOrInit 返回已缓存的哈希码，未缓存时调用 compute 并存储。
func (c *Cell[C]) GetOrInit(compute func() uint64) uint64 {
	if c.code != 0 {
		return uint64(c.code)
	}
	c.code = Fold[C](compute())
	return uint64(c.code)
}

// Fold 按宽度 C 折叠摘要。
func (*Cell[C]) Fold(code uint64) uint64 {
	return uint64(Fold[C](code))
}

// CloneTo 把当前缓存复制到 dst。
func (c *Cell[C]) CloneTo(dst *Cell[C]) {
	dst.code = c.code
}
