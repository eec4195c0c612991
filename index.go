package chego

import "golang.org/x/sys/cpu"

// hasPext reports whether the running CPU advertises BMI2 support. It is
// read once and combined with config.UsePext to decide which indexing path
// [InitTables] commits to for the lifetime of the process.
var hasPext = cpu.X86.HasBMI2

// bishopIndex and rookIndex turn a square and a (already masked) relevant
// occupancy into a dense 0-based index into that square's reach/attack
// array. The magic-multiplication path and the PEXT path yield different
// indices for the same occupancy, but each is collision-free, and the reach
// tables are built with whichever path is in effect, so both return the
// same reach bitboard: this is the perfect-hash property tested in the
// magic_test.go self-consistency test.
//
// Go's standard library has no PEXT intrinsic, so the "PEXT path" here is a
// portable bit-extract equivalent to the hardware instruction, gated on
// cpu.X86.HasBMI2 purely so the selection logic and [golang.org/x/sys/cpu]
// wiring mirror what a cgo/asm build would do; it is not faster than the
// magic-multiplication path.
func bishopIndex(square int, occupancy uint64) uint64 {
	occupancy &= bishopOccupancy[square]
	if usePext && hasPext {
		return pext(occupancy, bishopOccupancy[square])
	}
	return occupancy * bishopMagicNumbers[square] >> (64 - bishopBitCount[square])
}

func rookIndex(square int, occupancy uint64) uint64 {
	occupancy &= rookOccupancy[square]
	if usePext && hasPext {
		return pext(occupancy, rookOccupancy[square])
	}
	return occupancy * rookMagicNumbers[square] >> (64 - rookBitCount[square])
}

// pext extracts the bits of src selected by mask and packs them contiguously
// into the low bits of the result, matching the x86 PEXT instruction.
func pext(src, mask uint64) uint64 {
	var result, bb uint64 = 0, 1
	for mask != 0 {
		lsb := mask & -mask
		if src&lsb != 0 {
			result |= bb
		}
		mask &= mask - 1
		bb <<= 1
	}
	return result
}

// lookupBishopAttacks returns the bishop's reach bitboard from square given
// the full board occupancy.
func lookupBishopAttacks(square int, occupancy uint64) uint64 {
	return bishopAttacks[square][bishopIndex(square, occupancy)]
}

// lookupRookAttacks returns the rook's reach bitboard from square given the
// full board occupancy.
func lookupRookAttacks(square int, occupancy uint64) uint64 {
	return rookAttacks[square][rookIndex(square, occupancy)]
}

// lookupQueenAttacks is the union of the bishop and rook reach from square.
func lookupQueenAttacks(square int, occupancy uint64) uint64 {
	return lookupBishopAttacks(square, occupancy) | lookupRookAttacks(square, occupancy)
}
