package xhow

import (
	"cmp"
	"fmt"
	"unsafe"
)

// Borrowed 是对值的借用视图，类型参数与对应的 [How] 相同，
// 用于在以 How 为键的容器中查找，而不必构造一个拥有缓存的 How。
//
// Borrowed 只有一个字段，内存布局与 T 完全相同，[Ref] 可以把 *T
// 原地重解释为 *Borrowed，不复制。Borrowed 没有缓存：每次 Hash 都重新计算，
// 结果与同参数 How 缓存的哈希码一致（同样的算法、同样的宽度折叠）。
type Borrowed[T any, H Hasher[T], S any, PS StorerOf[S]] struct {
	Value T
}

// Borrow 以值构造 Borrowed。
func Borrow[T any, H Hasher[T], S any, PS StorerOf[S]](value T) Borrowed[T, H, S, PS] {
	return Borrowed[T, H, S, PS]{Value: value}
}

// Ref 把 *T 重解释为 *Borrowed，不复制。
//
// 返回的指针与 p 指向同一块内存，通过它写 Value 就是写 *p。
// Borrowed 没有缓存，写入不需要任何失效处理。
func Ref[T any, H Hasher[T], S any, PS StorerOf[S]](p *T) *Borrowed[T, H, S, PS] {
	return (*Borrowed[T, H, S, PS])(unsafe.Pointer(p))
}

// Get 返回借用的值。
func (b Borrowed[T, H, S, PS]) Get() T {
	return b.Value
}

// Mut 返回指向值的指针。
func (b *Borrowed[T, H, S, PS]) Mut() *T {
	return &b.Value
}

// Hash 计算哈希码，不缓存。
func (b Borrowed[T, H, S, PS]) Hash() uint64 {
	var hasher H
	return PS(nil).Fold(hasher.Hash(b.Value))
}

// Equal 用 H.Equal 比较值。
func (b Borrowed[T, H, S, PS]) Equal(other Borrowed[T, H, S, PS]) bool {
	var hasher H
	return hasher.Equal(b.Value, other.Value)
}

// EqualValue 用 H.Equal 比较借用的值与 v。
func (b Borrowed[T, H, S, PS]) EqualValue(v T) bool {
	var hasher H
	return hasher.Equal(b.Value, v)
}

// EqualHow 与 h 比较值，结果与 h.EqualBorrowed(b) 相同。
func (b Borrowed[T, H, S, PS]) EqualHow(h *How[T, H, S, PS]) bool {
	return b.EqualValue(h.value)
}

// String 返回调试格式 Borrowed(value)。
func (b Borrowed[T, H, S, PS]) String() string {
	return fmt.Sprintf("Borrowed(%v)", b.Value)
}

// CompareBorrowed 按值的自然顺序比较两个 Borrowed。
func CompareBorrowed[T cmp.Ordered, H Hasher[T], S any, PS StorerOf[S]](a, b Borrowed[T, H, S, PS]) int {
	return cmp.Compare(a.Value, b.Value)
}
