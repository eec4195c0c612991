package chego

import "github.com/treepeck/chego/bitutil"

/*
GenerateMoves fills list with every fully legal move available to the side
to move in p (spec §4.3): not merely pseudo-legal, but already filtered for
king safety, pins, and check. The caller must call list.Reset() first if
reusing a list across positions; GenerateMoves itself never does so, to let
a caller share one list across plies without reallocating.

Generation order: computePinsAndCheckers refreshes the scratch pin/check
fields, then king moves, then (if not in double check) pawn moves including
en passant, knights, bishops, rooks, and queens, each folded against
checkRays/pins, then castling when not in check.
*/
func (p *Position) GenerateMoves(list *MoveList) {
	p.computePinsAndCheckers()

	us := p.ActiveColor
	them := us.Opponent()
	occupancy := p.Occupancy()
	friendly := p.sides[us]
	enemy := p.sides[them]

	p.generateKingMoves(list, us, them, occupancy, friendly)

	if bitutil.CountBits(p.checkers) > 1 {
		return // double check: only the king moves already generated are legal
	}

	p.generatePawnMoves(list, us, them, occupancy, enemy)
	p.generateLeaperMoves(list, us, friendly, occupancy, knightAttacks[:], Knight)
	p.generateSliderMoves(list, us, friendly, occupancy, Bishop)
	p.generateSliderMoves(list, us, friendly, occupancy, Rook)
	p.generateSliderMoves(list, us, friendly, occupancy, Queen)

	if p.checkers == 0 {
		p.generateCastlingMoves(list, us, occupancy)
	}
}

// pinRayFor returns the ray a pinned piece on square is confined to, or the
// full board if it is not pinned along either axis. A piece pinned on a
// diagonal cannot also be pinned on a rank/file, so at most one of
// rookPins/bishopPins ever contains square. Pin rays on other lines through
// the king are masked off, so a piece cannot jump from its own pin ray onto
// another piece's.
func (p *Position) pinRayFor(square Square) uint64 {
	bb := uint64(1) << square
	king := p.KingSquare(p.ActiveColor)
	if p.rookPins&bb != 0 {
		if square.Rank() == king.Rank() {
			return p.rookPins & rankMask(king.Rank())
		}
		return p.rookPins & (bitutil.FileA << uint(king.File()))
	}
	if p.bishopPins&bb != 0 {
		return p.bishopPins & lookupBishopAttacks(int(king), 0) & (lookupBishopAttacks(int(square), 0) | bb)
	}
	return ^uint64(0)
}

func (p *Position) generateKingMoves(list *MoveList, us, them Color, occupancy, friendly uint64) {
	king := p.KingSquare(us)
	occWithoutKing := occupancy &^ (uint64(1) << king)

	targets := kingAttacks[king] &^ friendly
	for targets != 0 {
		to := Square(bitutil.PopLSB(&targets))
		if p.isAttacked(to, them, occWithoutKing) {
			continue
		}
		list.Push(NewMove(king, to, MoveNormal))
	}
}

func (p *Position) generatePawnMoves(list *MoveList, us, them Color, occupancy, enemy uint64) {
	var forward, doubleRank, promoRank int
	var capDirs [2]int // file deltas for the two capture directions
	if us == ColorWhite {
		forward, doubleRank, promoRank = 8, 1, 7
	} else {
		forward, doubleRank, promoRank = -8, 6, 0
	}
	capDirs = [2]int{-1, 1}

	pawns := p.ColoredBB(us, Pawn)
	for bb := pawns; bb != 0; {
		from := Square(bitutil.PopLSB(&bb))
		pinRay := p.pinRayFor(from)

		// Single and double pushes.
		one := Square(int(from) + forward)
		if one >= SA1 && one <= SH8 && occupancy&(uint64(1)<<one) == 0 {
			p.emitPawnPush(list, from, one, promoRank, pinRay)
			if from.Rank() == doubleRank {
				two := Square(int(from) + 2*forward)
				if occupancy&(uint64(1)<<two) == 0 && p.checkRays&(uint64(1)<<two) != 0 && pinRay&(uint64(1)<<two) != 0 {
					list.Push(NewMove(from, two, MoveNormal))
				}
			}
		}

		// Captures, including en passant.
		for _, df := range capDirs {
			toFile := from.File() + df
			if toFile < 0 || toFile > 7 {
				continue
			}
			to := Square(int(from) + forward + df)
			if to < SA1 || to > SH8 {
				continue
			}
			toBB := uint64(1) << to
			if enemy&toBB != 0 {
				if p.checkRays&toBB != 0 && pinRay&toBB != 0 {
					p.emitPawnPush(list, from, to, promoRank, ^uint64(0))
				}
				continue
			}
			if to == p.EPTarget {
				p.tryEnPassant(list, from, to, us, pinRay)
			}
		}
	}
}

// emitPawnPush pushes a quiet pawn move, expanding into four promotion
// moves when landing on the back rank; pinRay and checkRays have already
// been intersected by the caller for everything except the already-filtered
// to square, so only the to square itself is re-checked here.
func (p *Position) emitPawnPush(list *MoveList, from, to Square, promoRank int, pinRay uint64) {
	toBB := uint64(1) << to
	if p.checkRays&toBB == 0 || pinRay&toBB == 0 {
		return
	}
	if to.Rank() == promoRank {
		list.Push(NewPromotionMove(from, to, PromotionQueen))
		list.Push(NewPromotionMove(from, to, PromotionRook))
		list.Push(NewPromotionMove(from, to, PromotionBishop))
		list.Push(NewPromotionMove(from, to, PromotionKnight))
		return
	}
	list.Push(NewMove(from, to, MoveNormal))
}

// tryEnPassant validates the discovered-check edge case (rookEPPins) before
// admitting an en-passant capture, on top of the ordinary pin/check filters.
func (p *Position) tryEnPassant(list *MoveList, from, to Square, us Color, pinRay uint64) {
	if p.rookEPPins&(uint64(1)<<from) != 0 {
		return
	}
	var capturedSq Square
	if us == ColorWhite {
		capturedSq = to - 8
	} else {
		capturedSq = to + 8
	}
	captureMask := (uint64(1) << to) | (uint64(1) << capturedSq)
	if p.checkRays&captureMask == 0 {
		return
	}
	if pinRay&(uint64(1)<<to) == 0 {
		return
	}
	list.Push(NewMove(from, to, MoveEnPassant))
}

// generateLeaperMoves handles knights: no ray to worry about, so a pinned
// knight (pinRay != full board) simply has zero legal moves.
func (p *Position) generateLeaperMoves(list *MoveList, us Color, friendly, occupancy uint64, attacks []uint64, pt PieceType) {
	pieces := p.ColoredBB(us, pt)
	for bb := pieces; bb != 0; {
		from := Square(bitutil.PopLSB(&bb))
		if p.pinRayFor(from) != ^uint64(0) {
			continue
		}
		targets := attacks[from] &^ friendly & p.checkRays
		for targets != 0 {
			to := Square(bitutil.PopLSB(&targets))
			list.Push(NewMove(from, to, MoveNormal))
		}
	}
}

// generateSliderMoves handles bishops, rooks, and queens uniformly: look up
// the reach bitboard for the piece's actual type (queens query both
// tables), then intersect with checkRays and the piece's own pin ray.
func (p *Position) generateSliderMoves(list *MoveList, us Color, friendly, occupancy uint64, pt PieceType) {
	pieces := p.ColoredBB(us, pt)
	for bb := pieces; bb != 0; {
		from := Square(bitutil.PopLSB(&bb))
		pinRay := p.pinRayFor(from)

		var reach uint64
		switch pt {
		case Bishop:
			reach = lookupBishopAttacks(int(from), occupancy)
		case Rook:
			reach = lookupRookAttacks(int(from), occupancy)
		case Queen:
			reach = lookupQueenAttacks(int(from), occupancy)
		}

		targets := reach &^ friendly & p.checkRays & pinRay
		for targets != 0 {
			to := Square(bitutil.PopLSB(&targets))
			list.Push(NewMove(from, to, MoveNormal))
		}
	}
}

// castling square geometry per the four [CastlingRights] bits: king start
// and end squares, the squares that must be empty, and the squares that
// must be unattacked for the move to be legal. The rook's squares come from
// castlingRookSquares.
var castlingSpecs = [4]struct {
	right           CastlingRights
	kingFrom, kingTo Square
	emptySquares    uint64
	traverse        [3]Square // king's start, intermediate, and end square
}{
	{CastlingWhiteShort, SE1, SG1, BBF1 | BBG1, [3]Square{SE1, SF1, SG1}},
	{CastlingWhiteLong, SE1, SC1, BBB1 | BBC1 | BBD1, [3]Square{SE1, SD1, SC1}},
	{CastlingBlackShort, SE8, SG8, BBF8 | BBG8, [3]Square{SE8, SF8, SG8}},
	{CastlingBlackLong, SE8, SC8, BBB8 | BBC8 | BBD8, [3]Square{SE8, SD8, SC8}},
}

func (p *Position) generateCastlingMoves(list *MoveList, us Color, occupancy uint64) {
	them := us.Opponent()
	lo, hi := 0, 2
	if us == ColorBlack {
		lo, hi = 2, 4
	}
	for i := lo; i < hi; i++ {
		spec := castlingSpecs[i]
		if p.CastlingRights&spec.right == 0 {
			continue
		}
		if occupancy&spec.emptySquares != 0 {
			continue
		}
		blocked := false
		for _, sq := range spec.traverse {
			if p.isAttacked(sq, them, occupancy) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		list.Push(NewMove(spec.kingFrom, spec.kingTo, MoveCastling))
	}
}
