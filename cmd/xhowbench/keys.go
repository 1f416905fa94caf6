package main

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// 可打印 ASCII 范围。
const (
	printableMin = 0x20
	printableMax = 0x7e
)

// generateKeys 生成 n 个压测键。
//
// ascii：长度在 [0, maxLen) 内均匀分布的随机可打印 ASCII 串，可能重复；
// uuid：由 seed 派生的 ChaCha8 随机源生成的 UUIDv4 字符串，互不重复（概率意义上）。seed 相同时结果相同。
func generateKeys(kind string, n, maxLen int, seed uint64) []string {
	keys := make([]string, n)
	switch kind {
	case keyKindUUID:
		var s [32]byte
		binary.LittleEndian.PutUint64(s[:], seed)
		// ChaCha8.Read 不会失败，Must 不会触发。
		src := rand.NewChaCha8(s)
		for i := range keys {
			keys[i] = uuid.Must(uuid.NewRandomFromReader(src)).String()
		}
	default:
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		buf := make([]byte, maxLen)
		for i := range keys {
			size := rng.IntN(maxLen)
			for j := range size {
				buf[j] = byte(printableMin + rng.IntN(printableMax-printableMin+1))
			}
			keys[i] = string(buf[:size])
		}
	}
	return keys
}
