package xhowmap

import (
	"strconv"
	"testing"
)

// =============================================================================
// 性能测试（Benchmark）
// =============================================================================

func benchMap(n int) (*Map[string, *key, int], []string) {
	var keys scheme
	m := New[string, *key, int](WithCapacity(n))
	names := make([]string, n)
	for i := range n {
		names[i] = "key-" + strconv.Itoa(i)
		m.Insert(keys.New(names[i]), i)
	}
	return m, names
}

// BenchmarkGet_Borrowed 测试借用视图查找（每次现算哈希）
func BenchmarkGet_Borrowed(b *testing.B) {
	var keys scheme
	m, names := benchMap(1024)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_, _ = m.Get(keys.Borrow(names[i%len(names)]))
		i++
	}
}

// BenchmarkGet_Owned 测试已缓存 How 查找
func BenchmarkGet_Owned(b *testing.B) {
	var keys scheme
	m, names := benchMap(1024)
	owned := make([]*key, len(names))
	for i, n := range names {
		owned[i] = keys.New(n)
		owned[i].Hash()
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_, _ = m.Get(owned[i%len(owned)])
		i++
	}
}

// BenchmarkGet_NativeMap 作为对照：内置 map 的字符串查找
func BenchmarkGet_NativeMap(b *testing.B) {
	native := make(map[string]int, 1024)
	names := make([]string, 1024)
	for i := range names {
		names[i] = "key-" + strconv.Itoa(i)
		native[names[i]] = i
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_ = native[names[i%len(names)]]
		i++
	}
}

// BenchmarkInsertDelete 测试插入删除
func BenchmarkInsertDelete(b *testing.B) {
	var keys scheme
	m := New[string, *key, int]()
	k := keys.New("churn")
	b.ReportAllocs()
	for b.Loop() {
		m.Insert(k, 1)
		m.Delete(k)
	}
}
