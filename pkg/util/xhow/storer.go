package xhow

// Storer 保存一个可选的哈希码。
//
// 所有实现共享同一套语义：
//   - Clear 把状态重置为未缓存，总是成功
//   - Get 返回已缓存的哈希码，不产生副作用
//   - GetOrInit 命中时直接返回；未命中时调用 compute，经宽度折叠
//     （0 重映射为哨兵值）后存储并返回
//
// 一旦缓存了哈希码，在下一次 Clear 之前 GetOrInit 总是返回同一个值。
type Storer interface {
	Clear()
	Get() (uint64, bool)
	GetOrInit(compute func() uint64) uint64
}

// StorerOf 是 [How] 与 [Borrowed] 对存储器类型参数的约束。
//
// S 是存储器的值类型（嵌入在 How 中），PS 是其指针类型，方法都定义在指针上。
// 除 [Storer] 外还要求：
//   - Fold：按该存储器的宽度折叠摘要。Borrowed 会在 nil 指针上调用它，
//     因此实现不得读取接收者状态
//   - CloneTo：把 dst 初始化为克隆出的 How 所持有的存储器
type StorerOf[S any] interface {
	*S
	Storer
	Fold(code uint64) uint64
	CloneTo(dst *S)
}

// Releaser 由持有共享资源的存储器实现（目前只有 [Shared]）。
// How.Release/Unwrap 会调用它。
type Releaser interface {
	Release()
}

// 常用宽度的别名。
type (
	Cell64   = Cell[uint64]
	Cell32   = Cell[uint32]
	Cell16   = Cell[uint16]
	Cell8    = Cell[uint8]
	Atomic64 = Atomic[uint64]
	Atomic32 = Atomic[uint32]
	None64   = None[uint64]

	// SharedCell64 在单 goroutine 内让多个 How 共享同一个 Cell64。
	SharedCell64 = Shared[Cell64, *Cell64]
	// SharedAtomic64 让多个 How 跨 goroutine 共享同一个 Atomic64。
	SharedAtomic64 = Shared[Atomic64, *Atomic64]
)

// 编译期接口检查。
var (
	_ Storer   = (*Cell64)(nil)
	_ Storer   = (*Cell32)(nil)
	_ Storer   = (*Cell16)(nil)
	_ Storer   = (*Cell8)(nil)
	_ Storer   = (*Atomic64)(nil)
	_ Storer   = (*Atomic32)(nil)
	_ Storer   = (*None64)(nil)
	_ Storer   = (*SharedCell64)(nil)
	_ Storer   = (*SharedAtomic64)(nil)
	_ Releaser = (*SharedCell64)(nil)
	_ Releaser = (*SharedAtomic64)(nil)
)

// StorerOf 约束检查：每个别名都能作为 How 的存储器参数。
var (
	_ = New[string, XXHash[string], Cell32]
	_ = New[string, XXHash[string], Cell16]
	_ = New[string, XXHash[string], Cell8]
	_ = New[string, XXHash[string], Atomic32]
	_ = New[string, XXHash[string], SharedCell64]
)
