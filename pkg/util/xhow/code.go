package xhow

// Code 约束哈希码的整数宽度（8/16/32/64 位）。
//
// 宽度在编译期由存储器的类型参数决定，运行时没有分支。
// 0 保留为"未缓存"，实际算出的 0 会被重映射为 [Sentinel]。
type Code interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sentinel 返回宽度 C 下替代 0 的哨兵值，即 ^C(0) >> 2。
func Sentinel[C Code]() C {
	return ^C(0) >> 2
}

// Fold 将 64 位摘要截断到宽度 C，截断结果为 0 时返回 [Sentinel]。
// 返回值永远非 0。
func Fold[C Code](code uint64) C {
	c := C(code)
	if c == 0 {
		return Sentinel[C]()
	}
	return c
}
