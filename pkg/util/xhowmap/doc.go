// Package xhowmap 提供以 xhow.How 为键的哈希表，查找可以直接使用 xhow.Borrowed。
//
// Go 内置 map 不支持自定义哈希与等值，也不支持"用另一种类型查找"，
// 本包用键自带的 Hash 与 Equal 实现同样的能力：
//
//	type key = xhow.Local[string, xhow.XXHash[string]]
//	type ref = xhow.LocalRef[string, xhow.XXHash[string]]
//
//	m := xhowmap.New[string, *key, int]()
//	m.Insert(xhow.Wrap("a"), 1)
//	v, ok := m.Get(ref{Value: "a"}) // 1, true
//
// # 行为
//
//   - 插入已存在的相等键时保留原键，只替换值
//   - 以 *How 查找时走 How.Equal（双方已缓存且哈希码不同即判不等），
//     以其他 Key 查找时按值比较
//   - 插入会触发键的 Hash，缓存由键自己保存，重复插入同一个键不再重新哈希
//
// # 注意事项
//
//   - 不是并发安全的
//   - 键插入后不得再修改（Mut/Set/Update），否则它会停留在旧哈希码的桶里
//   - All/Keys 的遍历顺序不确定，遍历期间不得修改 Map
package xhowmap
