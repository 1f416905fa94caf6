package xhow

import (
	"cmp"
	"fmt"
)

// How 持有一个值和它的哈希缓存（hash on write）。
//
// 读访问没有副作用；任何可变访问（Mut/Set/Update）都会先清空缓存，
// 不管调用方是否真的修改了值。Hash 在缓存缺失时计算并写入缓存。
//
// How 必须通过指针使用（[New] 返回 *How），不要按值复制：复制会绕过
// 存储器的 CloneTo，对 [Shared] 而言会破坏引用计数。需要副本时用 Clone。
//
// 并发：读访问和 Hash 的并发安全性取决于 S（[Atomic]、[SharedAtomic64] 安全，
// [Cell] 不安全）；可变访问任何情况下都不得与其他访问并发。
type How[T any, H Hasher[T], S any, PS StorerOf[S]] struct {
	store S
	value T
}

// New 用 value 构造 How，缓存为空。
func New[T any, H Hasher[T], S any, PS StorerOf[S]](value T) *How[T, H, S, PS] {
	h := &How[T, H, S, PS]{value: value}
	PS(&h.store).Clear()
	return h
}

// Wrap 使用 [XXHash] 与 [Cell64] 构造 How，适合单 goroutine 的字符串/字节键。
func Wrap[T Bytes](value T) *Local[T, XXHash[T]] {
	return New[T, XXHash[T], Cell64](value)
}

// Get 返回持有的值。
//
// 对切片、map 等引用类型，返回值与 How 共享底层数据，通过它修改会让缓存失效，
// 这类修改应改用 Mut 或 Update。
func (h *How[T, H, S, PS]) Get() T {
	return h.value
}

// Mut 清空缓存并返回指向值的指针。
//
// 返回的指针只在下一次 Hash 之前可以写入；Hash 之后再写需要重新调用 Mut。
func (h *How[T, H, S, PS]) Mut() *T {
	PS(&h.store).Clear()
	return &h.value
}

// Set 清空缓存并替换值。
func (h *How[T, H, S, PS]) Set(value T) {
	PS(&h.store).Clear()
	h.value = value
}

// Update 清空缓存后对值执行 fn。
func (h *How[T, H, S, PS]) Update(fn func(v *T)) {
	fn(h.Mut())
}

// Hash 返回值的哈希码，缓存缺失时计算并写入缓存。
func (h *How[T, H, S, PS]) Hash() uint64 {
	store := PS(&h.store)
	if code, ok := store.Get(); ok {
		return code
	}
	return store.GetOrInit(h.compute)
}

func (h *How[T, H, S, PS]) compute() uint64 {
	var hasher H
	return hasher.Hash(h.value)
}

// HashCode 返回已缓存的哈希码，不触发计算。
func (h *How[T, H, S, PS]) HashCode() (uint64, bool) {
	return PS(&h.store).Get()
}

// IsHashed 报告哈希码是否已缓存。
func (h *How[T, H, S, PS]) IsHashed() bool {
	_, ok := h.HashCode()
	return ok
}

// Equal 比较两个 How 的值。
//
// 两边都有缓存且哈希码不同：直接返回 false，不比较值。
// 其余情况（哈希码相同，或任一侧未缓存）：用 H.Equal 比较值。
// 未缓存一侧不会因比较而被计算哈希。
func (h *How[T, H, S, PS]) Equal(other *How[T, H, S, PS]) bool {
	if a, ok := PS(&h.store).Get(); ok {
		if b, ok := PS(&other.store).Get(); ok && a != b {
			return false
		}
	}
	var hasher H
	return hasher.Equal(h.value, other.value)
}

// EqualValue 用 H.Equal 比较持有的值与 v。
func (h *How[T, H, S, PS]) EqualValue(v T) bool {
	var hasher H
	return hasher.Equal(h.value, v)
}

// EqualBorrowed 与 b 比较值。b 没有缓存，因此总是完整比较。
func (h *How[T, H, S, PS]) EqualBorrowed(b Borrowed[T, H, S, PS]) bool {
	return h.EqualValue(b.Value)
}

// Clone 复制值并按存储器规则复制缓存：
// Cell/Atomic 复制哈希码，Shared 加入同一槽位，None 无操作。
// 值是浅拷贝，引用类型需要深拷贝时用 CloneFunc。
func (h *How[T, H, S, PS]) Clone() *How[T, H, S, PS] {
	return h.CloneFunc(nil)
}

// CloneFunc 与 Clone 相同，但用 copyValue 复制值（nil 表示浅拷贝）。
// copyValue 必须返回与原值相等的副本，否则复制过来的缓存会失真。
func (h *How[T, H, S, PS]) CloneFunc(copyValue func(T) T) *How[T, H, S, PS] {
	c := &How[T, H, S, PS]{value: h.value}
	if copyValue != nil {
		c.value = copyValue(h.value)
	}
	PS(&h.store).CloneTo(&c.store)
	return c
}

// Release 释放存储器持有的共享资源（[Shared] 归还槽位引用）。
// 之后 How 仍可使用，但不再与兄弟持有者共享缓存。
func (h *How[T, H, S, PS]) Release() {
	if r, ok := any(PS(&h.store)).(Releaser); ok {
		r.Release()
	}
}

// Unwrap 释放存储器并返回持有的值。
func (h *How[T, H, S, PS]) Unwrap() T {
	h.Release()
	return h.value
}

// Storer 返回底层存储器，用于检查状态（例如 [Shared.Refs]）。
// 不要绕过 How 直接清空或写入。
func (h *How[T, H, S, PS]) Storer() PS {
	return PS(&h.store)
}

// String 返回调试格式 How{hashcode: ..., value: ...}。
func (h *How[T, H, S, PS]) String() string {
	if code, ok := h.HashCode(); ok {
		return fmt.Sprintf("How{hashcode: %#x, value: %v}", code, h.value)
	}
	return fmt.Sprintf("How{hashcode: none, value: %v}", h.value)
}

// Compare 按值的自然顺序比较，不参考哈希码。
func Compare[T cmp.Ordered, H Hasher[T], S any, PS StorerOf[S]](a, b *How[T, H, S, PS]) int {
	return cmp.Compare(a.value, b.value)
}

// CompareFunc 用 cmpFn 比较两个 How 的值。
func CompareFunc[T any, H Hasher[T], S any, PS StorerOf[S]](a, b *How[T, H, S, PS], cmpFn func(x, y T) int) int {
	return cmpFn(a.value, b.value)
}
