package xhow

import (
	"strings"
	"testing"
)

// =============================================================================
// 性能测试（Benchmark）
// =============================================================================

var benchKey = strings.Repeat("benchmark-key/", 64)

// BenchmarkHash_Cached 测试缓存命中时的 Hash
func BenchmarkHash_Cached(b *testing.B) {
	h := Wrap(benchKey)
	h.Hash()
	b.ReportAllocs()
	for b.Loop() {
		_ = h.Hash()
	}
}

// BenchmarkHash_Uncached 测试不缓存时的 Hash（每次都计算）
func BenchmarkHash_Uncached(b *testing.B) {
	h := New[string, XXHash[string], None64](benchKey)
	b.ReportAllocs()
	for b.Loop() {
		_ = h.Hash()
	}
}

// BenchmarkHash_AfterMut 测试每次修改后重新计算
func BenchmarkHash_AfterMut(b *testing.B) {
	h := Wrap(benchKey)
	b.ReportAllocs()
	for b.Loop() {
		h.Mut()
		_ = h.Hash()
	}
}

// BenchmarkHash_AtomicParallel 测试并发读取原子缓存
func BenchmarkHash_AtomicParallel(b *testing.B) {
	h := New[string, XXHash[string], Atomic64](benchKey)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.Hash()
		}
	})
}

// BenchmarkEqual_ShortCircuit 测试两侧已缓存、哈希码不同时的比较
func BenchmarkEqual_ShortCircuit(b *testing.B) {
	x := Wrap(benchKey + "x")
	y := Wrap(benchKey + "y")
	x.Hash()
	y.Hash()
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Equal(y)
	}
}

// BenchmarkEqual_Full 测试未缓存时的完整比较
func BenchmarkEqual_Full(b *testing.B) {
	x := Wrap(benchKey + "x")
	y := Wrap(benchKey + "y")
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Equal(y)
	}
}

// BenchmarkBorrowed_Hash 测试借用视图的 Hash
func BenchmarkBorrowed_Hash(b *testing.B) {
	r := Borrow[string, XXHash[string], Cell64](benchKey)
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Hash()
	}
}

// BenchmarkShared_Clone 测试共享存储器的克隆与释放
func BenchmarkShared_Clone(b *testing.B) {
	h := New[string, XXHash[string], SharedAtomic64](benchKey)
	h.Hash()
	b.ReportAllocs()
	for b.Loop() {
		c := h.Clone()
		c.Release()
	}
}

// BenchmarkDigest 测试池化摘要
func BenchmarkDigest(b *testing.B) {
	var h Digest[record]
	r := record{id: 42, name: benchKey}
	b.ReportAllocs()
	for b.Loop() {
		_ = h.Hash(r)
	}
}
