package chego

// Square identifies one of the 64 board squares, bit 0 = a1 through bit 63 =
// h8, or the sentinel NoSquare when the concept does not apply (no
// en-passant target, empty lookup).
type Square int

// NoSquare marks the absence of a square, e.g. [Position.EPTarget] when no
// en-passant capture is available.
const NoSquare Square = -1

// The following block enumerates every square in little-endian rank-file
// order, matching the bit layout of a [Bitboard].
const (
	SA1 Square = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// Bitboard is a 64-bit set, one bit per square.
type Bitboard = uint64

// Single-bit masks of every square, useful in table literals and tests.
const (
	BBA1 Bitboard = 1 << iota
	BBB1
	BBC1
	BBD1
	BBE1
	BBF1
	BBG1
	BBH1
	BBA2
	BBB2
	BBC2
	BBD2
	BBE2
	BBF2
	BBG2
	BBH2
	BBA3
	BBB3
	BBC3
	BBD3
	BBE3
	BBF3
	BBG3
	BBH3
	BBA4
	BBB4
	BBC4
	BBD4
	BBE4
	BBF4
	BBG4
	BBH4
	BBA5
	BBB5
	BBC5
	BBD5
	BBE5
	BBF5
	BBG5
	BBH5
	BBA6
	BBB6
	BBC6
	BBD6
	BBE6
	BBF6
	BBG6
	BBH6
	BBA7
	BBB7
	BBC7
	BBD7
	BBE7
	BBF7
	BBG7
	BBH7
	BBA8
	BBB8
	BBC8
	BBD8
	BBE8
	BBF8
	BBG8
	BBH8
)

// squareNames maps each square to its algebraic string representation.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic representation of the square, e.g. "e4", or
// "-" for [NoSquare].
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return squareNames[s]
}

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return int(s) / 8 }

// parseSquare parses an algebraic square string ("e4") or "-" into a Square.
// It reports ok=false for malformed input instead of panicking, so FEN
// parsing can surface a [FENError] to the caller.
func parseSquare(str string) (sq Square, ok bool) {
	if str == "-" {
		return NoSquare, true
	}
	if len(str) != 2 {
		return NoSquare, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return Square(int(rank-'1')*8 + int(file-'a')), true
}
