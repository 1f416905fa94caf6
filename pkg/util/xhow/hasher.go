package xhow

import (
	"bytes"
	"hash/maphash"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hasher 定义哈希算法与等值关系。
//
// 实现必须是无状态的：How 与 Borrowed 在每次使用时以零值构造 H。
// Hash 必须是确定性的，并且与 Equal 一致：Equal(a, b) 为 true 时
// Hash(a) == Hash(b)。缓存的短路比较依赖这一点，本包无法检查。
type Hasher[T any] interface {
	Hash(v T) uint64
	Equal(a, b T) bool
}

// Bytes 约束可直接按字节哈希的类型。
type Bytes interface {
	~string | ~[]byte
}

// Writer 是 [Hashable] 写入摘要的目标。
type Writer interface {
	io.Writer
	io.StringWriter
}

// Hashable 由自行描述哈希输入的聚合类型实现，配合 [Digest] 使用。
type Hashable[T any] interface {
	// WriteHash 把参与等值比较的字段写入 w，写入错误可以忽略（摘要写入不会失败）。
	WriteHash(w Writer)
	Equal(other T) bool
}

// XXHash 使用 xxhash64 哈希字符串与字节切片。
type XXHash[T Bytes] struct{}

// Hash 返回 v 的 xxhash64。
func (XXHash[T]) Hash(v T) uint64 {
	switch b := any(v).(type) {
	case string:
		return xxhash.Sum64String(b)
	case []byte:
		return xxhash.Sum64(b)
	}
	return xxhash.Sum64String(string(v))
}

// Equal 按字节比较。
func (XXHash[T]) Equal(a, b T) bool {
	switch x := any(a).(type) {
	case string:
		return x == any(b).(string)
	case []byte:
		return bytes.Equal(x, any(b).([]byte))
	}
	return string(a) == string(b)
}

// comparableSeed 是 Comparable 的进程内种子。哈希码只在本进程内有意义。
var comparableSeed = maphash.MakeSeed()

// Comparable 使用 hash/maphash 哈希任意可比较类型，等值即 ==。
//
// 种子在进程启动时随机生成，同一进程内结果稳定，跨进程不稳定。
// 浮点 NaN 与自身不相等，不应作为值使用。
type Comparable[T comparable] struct{}

// Hash 返回 v 的 maphash。
func (Comparable[T]) Hash(v T) uint64 {
	return maphash.Comparable(comparableSeed, v)
}

// Equal 返回 a == b。
func (Comparable[T]) Equal(a, b T) bool {
	return a == b
}

// digestPool 复用 xxhash.Digest，Digest 算法在热路径上不分配。
var digestPool = sync.Pool{
	New: func() any {
		return xxhash.New()
	},
}

// Digest 让实现了 [Hashable] 的聚合类型通过 xxhash64 流式摘要参与哈希。
type Digest[T Hashable[T]] struct{}

// Hash 把 v 写入一个池化的 xxhash.Digest 并返回摘要。
func (Digest[T]) Hash(v T) uint64 {
	d, ok := digestPool.Get().(*xxhash.Digest)
	if !ok {
		d = xxhash.New()
	}
	d.Reset()
	v.WriteHash(d)
	sum := d.Sum64()
	digestPool.Put(d)
	return sum
}

// Equal 调用 a.Equal(b)。
func (Digest[T]) Equal(a, b T) bool {
	return a.Equal(b)
}

// 编译期接口检查。
var (
	_ Hasher[string] = XXHash[string]{}
	_ Hasher[[]byte] = XXHash[[]byte]{}
	_ Hasher[int]    = Comparable[int]{}
	_ Writer         = (*xxhash.Digest)(nil)
)
