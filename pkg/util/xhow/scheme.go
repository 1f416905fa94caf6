package xhow

// Scheme 把 How 的类型参数打包成一个零大小的工厂，
// 让同一组参数的 New/Borrow/Ref 调用不必重复写类型参数：
//
//	var keys xhow.SyncScheme[string, xhow.XXHash[string]]
//	k := keys.New("user:42")
//	_ = k.EqualBorrowed(keys.Borrow("user:42"))
type Scheme[T any, H Hasher[T], S any, PS StorerOf[S]] struct{}

// New 构造 How，等价于 [New]。
func (Scheme[T, H, S, PS]) New(value T) *How[T, H, S, PS] {
	return New[T, H, S, PS](value)
}

// Borrow 构造 Borrowed，等价于 [Borrow]。
func (Scheme[T, H, S, PS]) Borrow(value T) Borrowed[T, H, S, PS] {
	return Borrow[T, H, S, PS](value)
}

// Ref 重解释指针，等价于 [Ref]。
func (Scheme[T, H, S, PS]) Ref(p *T) *Borrowed[T, H, S, PS] {
	return Ref[T, H, S, PS](p)
}

// Hash 计算 value 的哈希码而不缓存，结果与同参数 How 缓存的一致。
func (s Scheme[T, H, S, PS]) Hash(value T) uint64 {
	return s.Borrow(value).Hash()
}

// 常用存储器组合。哈希码宽度均为 64 位。
type (
	// Local 使用 Cell64，单 goroutine。
	Local[T any, H Hasher[T]] = How[T, H, Cell64, *Cell64]
	// Sync 使用 Atomic64，可并发 Hash。
	Sync[T any, H Hasher[T]] = How[T, H, Atomic64, *Atomic64]
	// Uncached 使用 None64，从不缓存。
	Uncached[T any, H Hasher[T]] = How[T, H, None64, *None64]
	// SharedLocal 使用 SharedCell64，克隆体共享缓存，单 goroutine。
	SharedLocal[T any, H Hasher[T]] = How[T, H, SharedCell64, *SharedCell64]
	// SharedSync 使用 SharedAtomic64，克隆体共享缓存，可并发 Hash。
	SharedSync[T any, H Hasher[T]] = How[T, H, SharedAtomic64, *SharedAtomic64]

	LocalRef[T any, H Hasher[T]]       = Borrowed[T, H, Cell64, *Cell64]
	SyncRef[T any, H Hasher[T]]        = Borrowed[T, H, Atomic64, *Atomic64]
	UncachedRef[T any, H Hasher[T]]    = Borrowed[T, H, None64, *None64]
	SharedLocalRef[T any, H Hasher[T]] = Borrowed[T, H, SharedCell64, *SharedCell64]
	SharedSyncRef[T any, H Hasher[T]]  = Borrowed[T, H, SharedAtomic64, *SharedAtomic64]

	LocalScheme[T any, H Hasher[T]]       = Scheme[T, H, Cell64, *Cell64]
	SyncScheme[T any, H Hasher[T]]        = Scheme[T, H, Atomic64, *Atomic64]
	UncachedScheme[T any, H Hasher[T]]    = Scheme[T, H, None64, *None64]
	SharedLocalScheme[T any, H Hasher[T]] = Scheme[T, H, SharedCell64, *SharedCell64]
	SharedSyncScheme[T any, H Hasher[T]]  = Scheme[T, H, SharedAtomic64, *SharedAtomic64]
)
