// Package bitutil implements the bit-level primitives shared by move
// generation and position management: bitboard scans, file/rank masks, and
// single-bit set/clear/test helpers.
package bitutil

// BitScan and PopLSB rely on the classic De Bruijn-style perfect-hash trick
// over the isolated LSB, not on math/bits. CountBits clears the lowest set
// bit in a loop until the word is empty.

// BitscanMagic is the precalculated multiplier used to form indices into
// bitScanLookup.
const BitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the folded isolated LSB of a 64-bit word to its index.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit of bitboard.
// The result is undefined for an empty bitboard.
func BitScan(bitboard uint64) int {
	return bitScanLookup[bitboard&-bitboard*BitscanMagic>>58]
}

// PopLSB clears the least significant set bit of *bitboard and returns its
// index, or -1 if the bitboard was already empty.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}
	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the population count (Hamming weight) of bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard > 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}

// Set returns bitboard with the bit at square raised.
func Set(bitboard uint64, square int) uint64 { return bitboard | 1<<uint(square) }

// Clear returns bitboard with the bit at square lowered.
func Clear(bitboard uint64, square int) uint64 { return bitboard &^ (1 << uint(square)) }

// Test reports whether the bit at square is set within bitboard.
func Test(bitboard uint64, square int) bool { return bitboard&(1<<uint(square)) != 0 }

// File/rank bitmasks used throughout the slider and pawn move generators to
// stop wraparound across board edges.
const (
	NotAFile   uint64 = 0xFEFEFEFEFEFEFEFE
	NotHFile   uint64 = 0x7F7F7F7F7F7F7F7F
	NotABFile  uint64 = 0xFCFCFCFCFCFCFCFC
	NotGHFile  uint64 = 0x3F3F3F3F3F3F3F3F
	Not1stRank uint64 = 0xFFFFFFFFFFFFFF00
	Not8thRank uint64 = 0x00FFFFFFFFFFFFFF
	Rank1      uint64 = 0xFF
	Rank2      uint64 = 0xFF00
	Rank4      uint64 = 0xFF000000
	Rank5      uint64 = 0xFF00000000
	Rank7      uint64 = 0xFF000000000000
	Rank8      uint64 = 0xFF00000000000000
	FileA      uint64 = 0x0101010101010101
	FileH      uint64 = 0x8080808080808080
)
