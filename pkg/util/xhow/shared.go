package xhow

import "sync/atomic"

// Shared 是透传存储器：把 Get/GetOrInit 转发给一个带引用计数的共享槽位，
// 槽位里放着真正的存储器 S。
//
// 通过 [How.Clone] 克隆出的多个 How 共享同一个槽位，任何一个算出的哈希码
// 对所有持有者可见。Clear 遵循写时复制：
//   - 唯一持有者（引用计数为 1）：原地清空
//   - 被共享：释放自己的引用，换成一个全新的默认槽位，其他持有者的缓存不受影响
//
// Go 没有析构，持有者不再使用时应调用 Release（或 How.Release/Unwrap）
// 归还引用，否则剩余持有者会一直被视为共享，Clear 退化为每次换新槽位，
// 结果仍然正确。
//
// 零值没有槽位：Get 报告未缓存，GetOrInit 只计算不缓存。经 [New] 构造的
// How 会在构造时分配槽位。
type Shared[S any, PS StorerOf[S]] struct {
	slot *sharedSlot[S]
}

// sharedSlot 是 Shared 共享的槽位。refs 是显式引用计数。
type sharedSlot[S any] struct {
	refs  atomic.Int64
	store S
}

func newSharedSlot[S any]() *sharedSlot[S] {
	s := &sharedSlot[S]{}
	s.refs.Store(1)
	return s
}

// Clear 按写时复制规则重置缓存。没有槽位时分配一个新槽位。
func (s *Shared[S, PS]) Clear() {
	slot := s.slot
	if slot == nil {
		s.slot = newSharedSlot[S]()
		return
	}
	if slot.refs.Load() == 1 {
		PS(&slot.store).Clear()
		return
	}
	// 被共享：不能动共享槽位，换成自己独占的新槽位。
	slot.refs.Add(-1)
	s.slot = newSharedSlot[S]()
}

// Get 返回共享槽位中的哈希码。
func (s *Shared[S, PS]) Get() (uint64, bool) {
	if s.slot == nil {
		return 0, false
	}
	return PS(&s.slot.store).Get()
}

// GetOrInit 转发给共享槽位。没有槽位时只计算不缓存。
func (s *Shared[S, PS]) GetOrInit(compute func() uint64) uint64 {
	if s.slot == nil {
		return PS(nil).Fold(compute())
	}
	return PS(&s.slot.store).GetOrInit(compute)
}

// Fold 使用内部存储器的折叠规则。
func (*Shared[S, PS]) Fold(code uint64) uint64 {
	return PS(nil).Fold(code)
}

// CloneTo 让 dst 加入同一个槽位。dst 原先持有的槽位会被释放。
func (s *Shared[S, PS]) CloneTo(dst *Shared[S, PS]) {
	if dst == s {
		return
	}
	dst.Release()
	if s.slot == nil {
		return
	}
	s.slot.refs.Add(1)
	dst.slot = s.slot
}

// Release 归还对槽位的引用。之后的行为与零值相同，直到下一次 Clear。
func (s *Shared[S, PS]) Release() {
	if s.slot == nil {
		return
	}
	s.slot.refs.Add(-1)
	s.slot = nil
}

// Refs 返回当前槽位的引用计数，没有槽位时返回 0。
func (s *Shared[S, PS]) Refs() int {
	if s.slot == nil {
		return 0
	}
	return int(s.slot.refs.Load())
}

// SameSlot 报告两个 Shared 是否指向同一个槽位。
func (s *Shared[S, PS]) SameSlot(other *Shared[S, PS]) bool {
	return s.slot != nil && s.slot == other.slot
}
