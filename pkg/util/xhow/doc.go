// Package xhow 提供哈希码缓存（hash on write）：值不变时不重复计算哈希。
//
// 适用于哈希代价明显高于查找本身的场景，例如以长字符串或大结构体为键的
// 哈希表：键被反复插入、查找、比较时，哈希只在第一次需要时计算一次。
//
// # 核心类型
//
//   - [How]：持有一个值和一个存储器（[Storer]）。读访问无副作用，
//     可变访问（Mut/Set/Update）总是先清空缓存，Hash 在缺失时计算并缓存
//   - [Borrowed]：与 How 类型参数相同的借用视图，内存布局与值相同，
//     用于查找时不必构造 How，也不占用缓存
//   - [Storer]：缓存槽位，四种实现见下文
//   - [Hasher]：哈希算法与等值关系，零值即可用
//
// # 存储器
//
//	类型          并发          说明
//	──────────────────────────────────────────────────────────
//	Cell[C]       单 goroutine  普通字段，无同步
//	Atomic[C]     并发 Hash     原子读写，并发未命中可能重复计算
//	None[C]       任意          从不缓存，每次都计算
//	Shared[S,PS]  取决于 S      克隆体共享槽位，Clear 时写时复制
//
// C 是哈希码宽度（uint8/16/32/64），由类型参数在编译期决定。
// 0 表示未缓存，算出的 0 会被重映射为 [Sentinel]。
//
// # 等值短路
//
// 两个 How 都已缓存且哈希码不同时，Equal 直接返回 false；其他情况
// （包括任一侧未缓存）都回退到 H.Equal。这要求 Hasher 满足
// "相等的值哈希相等"，本包无法检查。排序（[Compare]）从不参考哈希码。
//
// # 算法
//
//   - [XXHash]：github.com/cespare/xxhash/v2，用于 ~string 与 ~[]byte
//   - [Comparable]：hash/maphash，用于任意 comparable 类型，种子进程内有效
//   - [Digest]：实现了 [Hashable] 的聚合类型，写入池化的 xxhash 摘要
//
// 算法总是通过类型参数显式选择，没有进程级默认值。[Wrap] 只是
// XXHash + Cell64 组合的简写。
//
// # 快速开始
//
//	k := xhow.Wrap("a long key")
//	_ = k.Hash()          // 计算并缓存
//	_ = k.IsHashed()      // true
//	*k.Mut() += "!"       // 清空缓存
//
// 使用 [Scheme] 避免重复书写类型参数：
//
//	var keys xhow.SyncScheme[string, xhow.XXHash[string]]
//	k := keys.New("a")
//	k.EqualBorrowed(keys.Borrow("a")) // true
//
// 以 How 为键、接受 Borrowed 查找的哈希表见 xhowmap 包。
//
// # 注意事项
//
//   - How 必须通过指针使用，复制请用 Clone（按值复制会绕过 Shared 的引用计数）
//   - 不要在 Hash 之后绕过 Mut 修改值（例如通过 Get 返回的切片），缓存不会失效
//   - 放进哈希表的键不要再修改，否则查找不到
//   - Shared 的持有者不再使用时调用 Release/Unwrap 归还引用
package xhow
