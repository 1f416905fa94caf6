package xhow

import (
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// 测试替身的计数器。Hasher 每次使用时以零值构造，计数只能放在包级变量里，
// 因此使用计数器的测试不能 t.Parallel。
var (
	hashCalls  atomic.Int64
	equalCalls atomic.Int64
)

func resetCounters() {
	hashCalls.Store(0)
	equalCalls.Store(0)
}

// countingHasher 是计数版的 XXHash[string]。
type countingHasher struct{}

func (countingHasher) Hash(v string) uint64 {
	hashCalls.Add(1)
	return xxhash.Sum64String(v)
}

func (countingHasher) Equal(a, b string) bool {
	equalCalls.Add(1)
	return a == b
}

// probe 的哈希码由测试直接指定，等值只看 name：
// 可以构造"值相等、哈希码不同"的替身，验证短路不触发值比较。
type probe struct {
	name string
	code uint64
}

type probeHasher struct{}

func (probeHasher) Hash(p probe) uint64 {
	hashCalls.Add(1)
	return p.code
}

func (probeHasher) Equal(a, b probe) bool {
	equalCalls.Add(1)
	return a.name == b.name
}

type countingScheme = LocalScheme[string, countingHasher]
