package chego

import "github.com/treepeck/chego/bitutil"

/*
computePinsAndCheckers refreshes the scratch fields [Position.rookPins],
[Position.bishopPins], [Position.checkRays], [Position.checkers], and
[Position.rookEPPins] for the side to move. [Position.GenerateMoves] calls this once
per position before generating anything else; every other function in this
file only reads what it leaves behind.

rookPins/bishopPins hold, for each pinned friendly piece, the full ray
(pinning slider included) it is confined to — a pinned piece may only move
along that ray. checkRays holds the squares (strictly between the king and
a single checking slider, king excluded, checker included) a friendly piece
may interpose on or capture on; it is the full board when not in check, and
the empty set when in double check (only king moves remain legal).
checkers is the bitboard of pieces currently giving check. rookEPPins
flags, for an en-passant capture, whether removing both the capturing and
captured pawn from the same rank would expose the king to a rook/queen
along that rank (spec §4.3's discovered-check-via-en-passant edge case).
*/
func (p *Position) computePinsAndCheckers() {
	p.rookPins = 0
	p.bishopPins = 0
	p.checkRays = ^uint64(0)
	p.rookEPPins = 0

	us := p.ActiveColor
	them := us.Opponent()
	king := p.KingSquare(us)
	occupancy := p.Occupancy()

	p.checkers = p.attackersTo(king, them, occupancy)

	switch bitutil.CountBits(p.checkers) {
	case 0:
		// not in check; checkRays stays the full board.
	case 1:
		checker := Square(bitutil.BitScan(p.checkers))
		ct := p.pieces[checker].Type()
		if ct == Knight || ct == Pawn {
			p.checkRays = p.checkers // must capture the checker itself
		} else {
			p.checkRays = rayBetween(king, checker) | p.checkers
		}
	default:
		p.checkRays = 0 // double check: only king moves are legal
	}

	p.computePins(king, us, them, occupancy)
	p.computeEPPin(king, us, them)
}

// rayBetween returns the precomputed ray strictly between from and to,
// whichever orientation (rank/file vs diagonal) connects them; empty if
// they share neither.
func rayBetween(from, to Square) uint64 {
	if ray := levelRay[from][to]; ray != 0 || sameLine(from, to, true) {
		return ray
	}
	return diagonalRay[from][to]
}

// sameLine reports whether from and to share a rank/file (level=true) or a
// diagonal (level=false); used to disambiguate an empty ray (adjacent
// squares) from "not aligned at all" in rayBetween.
func sameLine(from, to Square, level bool) bool {
	if level {
		return from.File() == to.File() || from.Rank() == to.Rank()
	}
	df := from.File() - to.File()
	dr := from.Rank() - to.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr
}

// computePins finds every friendly piece sitting alone between the king
// and an enemy slider on a shared rank/file/diagonal, and records the full
// ray (pinning piece included) that piece is thereafter confined to.
func (p *Position) computePins(king Square, us, them Color, occupancy uint64) {
	enemyRooks := p.ColoredBB(them, Rook) | p.ColoredBB(them, Queen)
	enemyBishops := p.ColoredBB(them, Bishop) | p.ColoredBB(them, Queen)

	// Probe as if the king's own slider attacks passed through friendly
	// pieces only: an x-ray from the king outward on a board holding only
	// the enemy pieces, then intersect with actual sliders of the matching
	// type.
	kingRookRay := lookupRookAttacks(int(king), p.sides[them])
	kingBishopRay := lookupBishopAttacks(int(king), p.sides[them])

	for pinners := kingRookRay & enemyRooks; pinners != 0; {
		pinner := Square(bitutil.PopLSB(&pinners))
		between := rayBetween(king, pinner)
		blockers := between & occupancy
		if blockers != 0 && blockers&(blockers-1) == 0 && blockers&p.sides[us] != 0 {
			p.rookPins |= between | (uint64(1) << pinner)
		}
	}
	for pinners := kingBishopRay & enemyBishops; pinners != 0; {
		pinner := Square(bitutil.PopLSB(&pinners))
		between := rayBetween(king, pinner)
		blockers := between & occupancy
		if blockers != 0 && blockers&(blockers-1) == 0 && blockers&p.sides[us] != 0 {
			p.bishopPins |= between | (uint64(1) << pinner)
		}
	}
}

// computeEPPin handles the rare case where the king stands on the fourth or
// fifth rank alongside both pawns involved in an en-passant capture, and
// removing them both would expose the king to a rook or queen along that
// rank — legal under every other rule but a discovered check nonetheless.
func (p *Position) computeEPPin(king Square, us, them Color) {
	if p.EPTarget == NoSquare {
		return
	}
	var capturedSq Square
	if us == ColorWhite {
		capturedSq = p.EPTarget - 8
	} else {
		capturedSq = p.EPTarget + 8
	}
	if king.Rank() != capturedSq.Rank() {
		return
	}

	enemyRooks := p.ColoredBB(them, Rook) | p.ColoredBB(them, Queen)
	if enemyRooks&(rankMask(king.Rank())) == 0 {
		return
	}

	ourPawns := p.ColoredBB(us, Pawn) & pawnAttacks[them][p.EPTarget] & rankMask(king.Rank())
	for attackers := ourPawns; attackers != 0; {
		from := Square(bitutil.PopLSB(&attackers))
		occWithoutEP := p.Occupancy() &^ (uint64(1) << from) &^ (uint64(1) << capturedSq)
		if lookupRookAttacks(int(king), occWithoutEP)&enemyRooks != 0 {
			p.rookEPPins |= uint64(1) << from
		}
	}
}

// rankMask returns the bitboard of every square on the given rank (0-7).
func rankMask(rank int) uint64 {
	return uint64(0xFF) << (rank * 8)
}
