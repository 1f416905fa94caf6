// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xhow: 写时失效的哈希缓存包装（hash on write），可选缓存宽度与并发语义
//   - xhowmap: 以 xhow.How 为键的哈希表，支持借用视图查找
//
// 设计原则：
//   - 零值可用，不依赖初始化顺序
//   - 泛型参数在编译期确定策略，热路径无接口调用与分配
//   - 库内不打日志，不返回错误
package util
