package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitScan(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i
		assert.Equal(t, i, BitScan(bitboard))
	}
}

func TestPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i
		require.Equal(t, i, PopLSB(&bitboard))
		assert.Zero(t, bitboard)
	}

	var empty uint64
	assert.Equal(t, -1, PopLSB(&empty))
}

func TestCountBits(t *testing.T) {
	assert.Equal(t, 1, CountBits(0x8000000000000000))
	assert.Equal(t, 0, CountBits(0x0))
	assert.Equal(t, 64, CountBits(0xFFFFFFFFFFFFFFFF))
	assert.Equal(t, 8, CountBits(Rank1))
}

func TestSetClearTest(t *testing.T) {
	var bb uint64
	bb = Set(bb, 4)
	assert.True(t, Test(bb, 4))
	assert.False(t, Test(bb, 5))

	bb = Clear(bb, 4)
	assert.False(t, Test(bb, 4))
	assert.Zero(t, bb)
}

func TestFileRankMasks(t *testing.T) {
	assert.Equal(t, 8, CountBits(Rank1))
	assert.Equal(t, 8, CountBits(Rank8))
	assert.Equal(t, 8, CountBits(FileA))
	assert.Equal(t, 8, CountBits(FileH))
	assert.Equal(t, uint64(0), FileA&NotAFile)
	assert.Equal(t, uint64(0), FileH&NotHFile)
}

func BenchmarkBitScan(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BitScan(0x8000000000000000)
	}
}

func BenchmarkPopLSB(b *testing.B) {
	var bitboard uint64 = 0xFFFFFFFFFFFFFFFF
	for i := 0; i < b.N; i++ {
		if bitboard == 0 {
			bitboard = 0xFFFFFFFFFFFFFFFF
		}
		PopLSB(&bitboard)
	}
}

func BenchmarkCountBits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountBits(0xFFFFFFFFFFFFFFFF)
	}
}
