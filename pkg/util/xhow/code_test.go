package xhow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinel(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64>>2), Sentinel[uint64]())
	assert.Equal(t, uint32(math.MaxUint32>>2), Sentinel[uint32]())
	assert.Equal(t, uint16(0x3fff), Sentinel[uint16]())
	assert.Equal(t, uint8(0x3f), Sentinel[uint8]())
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		code uint64
		want uint64
		fold func(uint64) uint64
	}{
		{"u64 zero", 0, math.MaxUint64 >> 2, func(c uint64) uint64 { return Fold[uint64](c) }},
		{"u64 passthrough", 42, 42, func(c uint64) uint64 { return Fold[uint64](c) }},
		{"u32 truncate", 0x1_0000_0007, 7, func(c uint64) uint64 { return uint64(Fold[uint32](c)) }},
		{"u32 truncated to zero", 0x1_0000_0000, math.MaxUint32 >> 2, func(c uint64) uint64 { return uint64(Fold[uint32](c)) }},
		{"u8 truncate", 0x1ff, 0xff, func(c uint64) uint64 { return uint64(Fold[uint8](c)) }},
		{"u8 truncated to zero", 0x100, 0x3f, func(c uint64) uint64 { return uint64(Fold[uint8](c)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fold(tt.code))
		})
	}
}

func TestFold_NamedWidth(t *testing.T) {
	type short uint16
	assert.Equal(t, short(0x3fff), Fold[short](0x10000))
}
