package chego

import (
	"sync"

	"github.com/treepeck/chego/bitutil"
	"github.com/treepeck/chego/chlog"
	"github.com/treepeck/chego/config"
)

var tablesLog = chlog.Get("tables")

// Precomputed attack/reach tables. All are immutable once [InitTables] has
// run and are safe to share read-only across many Positions and goroutines;
// nothing here is ever mutated again.
var (
	pawnAttacks   [2][64]uint64
	knightAttacks [64]uint64
	kingAttacks   [64]uint64

	bishopOccupancy [64]uint64
	rookOccupancy   [64]uint64

	// bishopAttacks/rookAttacks are indexed [square][magicIndex] and hold
	// the slider's reach bitboard — every square it could move to, stopping
	// at (and including) the first blocker in each ray.
	bishopAttacks [64][512]uint64
	rookAttacks   [64][4096]uint64

	// levelRay/diagonalRay[from][to] is the set of squares strictly between
	// from and to (exclusive of both) when they share a rank/file or
	// diagonal, used by pin and check-ray computation. Empty when from and
	// to do not share a line.
	levelRay    [64][64]uint64
	diagonalRay [64][64]uint64

	usePext bool

	tablesOnce sync.Once
)

// InitTables builds every precomputed table this package depends on: pawn,
// knight, and king attack masks, magic-indexed slider reach tables, and the
// between-squares ray tables used for pin detection. It is idempotent and
// safe to call from multiple goroutines; only the first call does any work.
//
// Call this once, as close to process start as possible — move generation,
// attack detection, and Zobrist hashing all read these tables; if it was
// skipped they read all-zero tables and return wrong results without
// panicking.
func InitTables() {
	tablesOnce.Do(func() {
		usePext = config.UsePext
		initLeaperAttacks()
		initSliderTables()
		initRayTables()
		initZobristKeys()
		tablesLog.Info("attack tables, magic indices, and zobrist keys initialized")
	})
}

func initLeaperAttacks() {
	for sq := 0; sq < 64; sq++ {
		bb := uint64(1) << sq
		pawnAttacks[ColorWhite][sq] = pawnAttacksFrom(bb, ColorWhite)
		pawnAttacks[ColorBlack][sq] = pawnAttacksFrom(bb, ColorBlack)
		knightAttacks[sq] = knightAttacksFrom(bb)
		kingAttacks[sq] = kingAttacksFrom(bb)
	}
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		bishopOccupancy[sq] = relevantBishopOccupancy(sq)
		rookOccupancy[sq] = relevantRookOccupancy(sq)

		bCount := bishopBitCount[sq]
		for i := 0; i < 1<<bCount; i++ {
			occ := indexToOccupancy(i, bCount, bishopOccupancy[sq])
			idx := bishopIndex(sq, occ)
			bishopAttacks[sq][idx] = slidingAttacks(sq, occ, bishopDirs)
		}

		rCount := rookBitCount[sq]
		for i := 0; i < 1<<rCount; i++ {
			occ := indexToOccupancy(i, rCount, rookOccupancy[sq])
			idx := rookIndex(sq, occ)
			rookAttacks[sq][idx] = slidingAttacks(sq, occ, rookDirs)
		}
	}
}

// direction is a (file delta, rank delta) step used to walk a ray outward
// from a square until it leaves the board or hits a blocker.
type direction struct{ df, dr int }

var bishopDirs = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// slidingAttacks walks each direction from sq, including the first blocked
// square (and every square before it), and stopping there.
func slidingAttacks(sq int, occupancy uint64, dirs [4]direction) uint64 {
	var attacks uint64
	file, rank := sq%8, sq/8

	for _, d := range dirs {
		f, r := file+d.df, rank+d.dr
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			dest := uint64(1) << (r*8 + f)
			attacks |= dest
			if dest&occupancy != 0 {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return attacks
}

// relevantBishopOccupancy returns the bishop's blocker-relevant squares:
// every square on its four diagonals excluding the board edge.
func relevantBishopOccupancy(sq int) uint64 {
	var occ uint64
	file, rank := sq%8, sq/8
	for _, d := range bishopDirs {
		f, r := file+d.df, rank+d.dr
		for f >= 1 && f <= 6 && r >= 1 && r <= 6 {
			occ |= uint64(1) << (r*8 + f)
			f += d.df
			r += d.dr
		}
	}
	return occ
}

// relevantRookOccupancy returns the rook's blocker-relevant squares: every
// square on its rank and file excluding the board edge in that direction.
func relevantRookOccupancy(sq int) uint64 {
	var occ uint64
	file, rank := sq%8, sq/8
	for f := file + 1; f <= 6; f++ {
		occ |= uint64(1) << (rank*8 + f)
	}
	for f := file - 1; f >= 1; f-- {
		occ |= uint64(1) << (rank*8 + f)
	}
	for r := rank + 1; r <= 6; r++ {
		occ |= uint64(1) << (r*8 + file)
	}
	for r := rank - 1; r >= 1; r-- {
		occ |= uint64(1) << (r*8 + file)
	}
	return occ
}

// indexToOccupancy expands a dense index (0..2^bitCount) back into the
// subset of relevantOccupancy's set bits it names, used to enumerate every
// possible blocker configuration when building the reach tables.
func indexToOccupancy(index, bitCount int, relevantOccupancy uint64) uint64 {
	var occ uint64
	for i := 0; i < bitCount; i++ {
		sq := bitutil.PopLSB(&relevantOccupancy)
		if index&(1<<i) != 0 {
			occ |= uint64(1) << sq
		}
	}
	return occ
}

func initRayTables() {
	for from := 0; from < 64; from++ {
		ff, fr := from%8, from/8
		for _, d := range rookDirs {
			var ray uint64
			f, r := ff+d.df, fr+d.dr
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				to := r*8 + f
				levelRay[from][to] = ray
				ray |= uint64(1) << to
				f += d.df
				r += d.dr
			}
		}
		for _, d := range bishopDirs {
			var ray uint64
			f, r := ff+d.df, fr+d.dr
			for f >= 0 && f < 8 && r >= 0 && r < 8 {
				to := r*8 + f
				diagonalRay[from][to] = ray
				ray |= uint64(1) << to
				f += d.df
				r += d.dr
			}
		}
	}
}

// pawnAttacksFrom returns the squares a pawn (or pawns) of the given color
// standing on pawn attack, used only to build the pawnAttacks table; move
// generation indexes that table instead of recomputing this.
func pawnAttacksFrom(pawn uint64, c Color) uint64 {
	if c == ColorWhite {
		return (pawn & bitutil.NotAFile << 7) | (pawn & bitutil.NotHFile << 9)
	}
	return (pawn & bitutil.NotAFile >> 9) | (pawn & bitutil.NotHFile >> 7)
}

func knightAttacksFrom(knight uint64) uint64 {
	return (knight & bitutil.NotAFile >> 17) |
		(knight & bitutil.NotHFile >> 15) |
		(knight & bitutil.NotABFile >> 10) |
		(knight & bitutil.NotGHFile >> 6) |
		(knight & bitutil.NotABFile << 6) |
		(knight & bitutil.NotGHFile << 10) |
		(knight & bitutil.NotAFile << 15) |
		(knight & bitutil.NotHFile << 17)
}

func kingAttacksFrom(king uint64) uint64 {
	return (king & bitutil.NotAFile >> 9) |
		(king >> 8) |
		(king & bitutil.NotHFile >> 7) |
		(king & bitutil.NotAFile >> 1) |
		(king & bitutil.NotHFile << 1) |
		(king & bitutil.NotAFile << 7) |
		(king << 8) |
		(king & bitutil.NotHFile << 9)
}
