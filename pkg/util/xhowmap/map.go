package xhowmap

import "iter"

// Key 是查找键：*xhow.How 与 xhow.Borrowed 都满足。
// 同一个值通过两种键算出的哈希码必须相同。
type Key[T any] interface {
	Hash() uint64
	Get() T
}

// OwnedKey 是存储在 Map 中的键，通常是 *xhow.How。
//
// Equal 用于键与键之间的比较（可以利用缓存的哈希码短路），
// EqualValue 用于与其他查找键的值比较。
type OwnedKey[T any, K any] interface {
	Key[T]
	Equal(other K) bool
	EqualValue(v T) bool
}

// entry 是桶内的一个键值对。
type entry[K any, V any] struct {
	key   K
	value V
}

// Map 是以 K（通常是 *xhow.How）为键的哈希表，
// 查找可以使用任何 [Key]，例如同参数的 xhow.Borrowed。
//
// 桶以键的哈希码索引，同一哈希码下的冲突键顺序比较。
// 零值即空 Map，可直接使用。不是并发安全的，与内置 map 相同。
type Map[T any, K OwnedKey[T, K], V any] struct {
	buckets map[uint64][]entry[K, V]
	n       int
}

// New 创建空 Map。
func New[T any, K OwnedKey[T, K], V any](opts ...Option) *Map[T, K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Map[T, K, V]{
		buckets: make(map[uint64][]entry[K, V], o.capacity),
	}
}

// Insert 写入键值对。
// 已存在相等的键时保留原键，只替换值，返回旧值与 true。
func (m *Map[T, K, V]) Insert(key K, value V) (old V, replaced bool) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]entry[K, V])
	}
	code := key.Hash()
	bucket := m.buckets[code]
	for i := range bucket {
		if bucket[i].key.Equal(key) {
			old = bucket[i].value
			bucket[i].value = value
			return old, true
		}
	}
	m.buckets[code] = append(bucket, entry[K, V]{key: key, value: value})
	m.n++
	return old, false
}

// Get 查找 key 对应的值。
func (m *Map[T, K, V]) Get(key Key[T]) (V, bool) {
	if i, bucket := m.find(key); i >= 0 {
		return bucket[i].value, true
	}
	var zero V
	return zero, false
}

// GetKey 查找 key 对应的已存储键与值。
func (m *Map[T, K, V]) GetKey(key Key[T]) (K, V, bool) {
	if i, bucket := m.find(key); i >= 0 {
		return bucket[i].key, bucket[i].value, true
	}
	var (
		zk K
		zv V
	)
	return zk, zv, false
}

// Contains 报告 key 是否存在。
func (m *Map[T, K, V]) Contains(key Key[T]) bool {
	i, _ := m.find(key)
	return i >= 0
}

// Delete 删除 key，返回被删除的值。
func (m *Map[T, K, V]) Delete(key Key[T]) (V, bool) {
	code := key.Hash()
	i, bucket := m.findIn(m.buckets[code], key)
	if i < 0 {
		var zero V
		return zero, false
	}
	value := bucket[i].value
	if len(bucket) == 1 {
		delete(m.buckets, code)
	} else {
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = entry[K, V]{}
		m.buckets[code] = bucket[:last]
	}
	m.n--
	return value, true
}

// Len 返回键值对数量。
func (m *Map[T, K, V]) Len() int {
	return m.n
}

// Clear 删除所有键值对。
func (m *Map[T, K, V]) Clear() {
	clear(m.buckets)
	m.n = 0
}

// All 遍历所有键值对，顺序不确定。遍历期间不得修改 Map。
func (m *Map[T, K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys 遍历所有键，顺序不确定。
func (m *Map[T, K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[T, K, V]) find(key Key[T]) (int, []entry[K, V]) {
	return m.findIn(m.buckets[key.Hash()], key)
}

// findIn 在桶内查找与 key 相等的条目。
// key 本身是 K 时走 K.Equal（两边都有缓存时可短路），否则按值比较。
func (m *Map[T, K, V]) findIn(bucket []entry[K, V], key Key[T]) (int, []entry[K, V]) {
	if len(bucket) == 0 {
		return -1, nil
	}
	if owned, ok := key.(K); ok {
		for i := range bucket {
			if bucket[i].key.Equal(owned) {
				return i, bucket
			}
		}
		return -1, nil
	}
	v := key.Get()
	for i := range bucket {
		if bucket[i].key.EqualValue(v) {
			return i, bucket
		}
	}
	return -1, nil
}
