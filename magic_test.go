package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMagicIndicesArePerfectHashes enumerates every relevant-occupancy
// subset for every square and checks that bishopIndex/rookIndex never
// collide two distinct occupancies into a reach bitboard other than the one
// slidingAttacks computes directly. InitTables builds bishopAttacks/
// rookAttacks by writing slidingAttacks(sq, occ, dirs) at index(sq, occ) for
// every occ in this same enumeration; if two different occupancies mapped to
// the same index with different reach bitboards, one write would silently
// clobber the other here, and this loop would catch the mismatch.
func TestMagicIndicesArePerfectHashes(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		bCount := bishopBitCount[sq]
		for i := 0; i < 1<<bCount; i++ {
			occ := indexToOccupancy(i, bCount, bishopOccupancy[sq])
			want := slidingAttacks(sq, occ, bishopDirs)
			got := lookupBishopAttacks(sq, occ)
			assert.Equalf(t, want, got, "bishop index collision on square %d, occupancy %#x", sq, occ)
		}

		rCount := rookBitCount[sq]
		for i := 0; i < 1<<rCount; i++ {
			occ := indexToOccupancy(i, rCount, rookOccupancy[sq])
			want := slidingAttacks(sq, occ, rookDirs)
			got := lookupRookAttacks(sq, occ)
			assert.Equalf(t, want, got, "rook index collision on square %d, occupancy %#x", sq, occ)
		}
	}
}
