package chego

// MakeMove applies m (assumed legal — normally one produced by
// [Position.GenerateMoves]) to p, updating every bitboard, list, and
// bookkeeping field incrementally and pushing a [historyRecord] onto the
// journal so [Position.UndoMove] can reverse it in O(1) without
// recomputing the Zobrist hash from scratch (spec §4.4).
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	us := p.ActiveColor
	them := us.Opponent()
	moved := p.pieces[from]
	captured := p.pieces[to]

	record := historyRecord{
		castlingRights: p.CastlingRights,
		epTarget:       p.EPTarget,
		halfmoveCnt:    p.HalfmoveCnt,
		hash:           p.hash,
		move:           m,
		moved:          moved,
		captured:       captured,
		knightCount:    p.knightCount,
		lightBishops:   p.lightBishops,
		darkBishops:    p.darkBishops,
	}
	p.history = append(p.history, record)

	prevEP := p.EPTarget
	p.EPTarget = NoSquare

	switch m.Type() {
	case MoveEnPassant:
		p.movePiece(moved, from, to)
		var capturedSq Square
		if us == ColorWhite {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		capturedPawn := NewPiece(them, Pawn)
		p.removePiece(capturedPawn, capturedSq)
		p.hash ^= pieceKeys[capturedPawn][capturedSq]

	case MoveCastling:
		p.movePiece(moved, from, to)
		rookFrom, rookTo := castlingRookSquares(to)
		rook := NewPiece(us, Rook)
		p.removePiece(rook, rookFrom)
		p.placePiece(rook, rookTo)
		p.hash ^= pieceKeys[rook][rookFrom]
		p.hash ^= pieceKeys[rook][rookTo]

	case MovePromotion:
		p.removePiece(moved, from)
		p.hash ^= pieceKeys[moved][from]
		if captured != PieceNone {
			p.removePiece(captured, to)
			p.hash ^= pieceKeys[captured][to]
		}
		promoted := NewPiece(us, m.Promotion().pieceType())
		p.placePiece(promoted, to)
		p.hash ^= pieceKeys[promoted][to]

	default:
		if captured != PieceNone {
			p.removePiece(captured, to)
			p.hash ^= pieceKeys[captured][to]
		}
		p.movePiece(moved, from, to)

		// A double pawn push opens a new en-passant target.
		if moved.Type() == Pawn {
			delta := int(to) - int(from)
			if delta == 16 || delta == -16 {
				p.EPTarget = Square((int(from) + int(to)) / 2)
			}
		}
	}

	if prevEP != NoSquare {
		p.hash ^= epFileKeys[prevEP.File()]
	}
	if p.EPTarget != NoSquare {
		p.hash ^= epFileKeys[p.EPTarget.File()]
	}

	p.hash ^= castlingKeys[p.CastlingRights]
	p.updateCastlingRights(from, to, moved, captured)
	p.hash ^= castlingKeys[p.CastlingRights]

	if moved.Type() == Pawn || captured != PieceNone {
		p.HalfmoveCnt = 0
	} else {
		p.HalfmoveCnt++
	}

	if us == ColorBlack {
		p.FullmoveCnt++
	}

	p.ActiveColor = them
	p.hash ^= turnKey

	p.positionCounts[p.hash]++
}

// movePiece relocates piece from one square to another, keeping every
// redundant field (bitboards, pieces[], piece list) and the incremental
// hash in lockstep.
func (p *Position) movePiece(piece Piece, from, to Square) {
	p.removePiece(piece, from)
	p.placePiece(piece, to)
	p.hash ^= pieceKeys[piece][from]
	p.hash ^= pieceKeys[piece][to]
}

// castlingRookSquares returns the rook's (from, to) squares for the
// castling move whose king lands on kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SG1:
		return SH1, SF1
	case SC1:
		return SA1, SD1
	case SG8:
		return SH8, SF8
	case SC8:
		return SA8, SD8
	default:
		panic("chego: castlingRookSquares: not a castling destination")
	}
}

// updateCastlingRights strips whichever rights the move just moving
// to/from a king or rook start square permanently revokes.
func (p *Position) updateCastlingRights(from, to Square, moved, captured Piece) {
	switch {
	case moved == PieceWKing:
		p.CastlingRights &^= CastlingWhiteShort | CastlingWhiteLong
	case moved == PieceBKing:
		p.CastlingRights &^= CastlingBlackShort | CastlingBlackLong
	}
	p.revokeIfRookSquare(from)
	p.revokeIfRookSquare(to)
	_ = captured
}

// revokeIfRookSquare clears the castling right tied to a rook's home
// square, whether that rook just moved away from it or was just captured
// on it.
func (p *Position) revokeIfRookSquare(sq Square) {
	switch sq {
	case SA1:
		p.CastlingRights &^= CastlingWhiteLong
	case SH1:
		p.CastlingRights &^= CastlingWhiteShort
	case SA8:
		p.CastlingRights &^= CastlingBlackLong
	case SH8:
		p.CastlingRights &^= CastlingBlackShort
	}
}

// UndoMove reverses the most recent [Position.MakeMove] call, restoring
// every field from the journaled [historyRecord] in O(1). It panics if
// called on a position with no history, mirroring an out-of-bounds slice
// access: undoing past the start of the game is a programming error, not a
// recoverable one.
func (p *Position) UndoMove() {
	n := len(p.history)
	record := p.history[n-1]
	p.history = p.history[:n-1]

	p.positionCounts[p.hash]--
	if p.positionCounts[p.hash] == 0 {
		delete(p.positionCounts, p.hash)
	}

	them := p.ActiveColor
	us := them.Opponent()
	m := record.move
	from, to := m.From(), m.To()

	switch m.Type() {
	case MoveEnPassant:
		p.removePiece(record.moved, to)
		p.placePiece(record.moved, from)
		var capturedSq Square
		if us == ColorWhite {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		p.placePiece(NewPiece(them, Pawn), capturedSq)

	case MoveCastling:
		p.removePiece(record.moved, to)
		p.placePiece(record.moved, from)
		rookFrom, rookTo := castlingRookSquares(to)
		rook := NewPiece(us, Rook)
		p.removePiece(rook, rookTo)
		p.placePiece(rook, rookFrom)

	case MovePromotion:
		promoted := NewPiece(us, m.Promotion().pieceType())
		p.removePiece(promoted, to)
		if record.captured != PieceNone {
			p.placePiece(record.captured, to)
		}
		p.placePiece(record.moved, from)

	default:
		p.removePiece(record.moved, to)
		p.placePiece(record.moved, from)
		if record.captured != PieceNone {
			p.placePiece(record.captured, to)
		}
	}

	p.ActiveColor = us
	p.CastlingRights = record.castlingRights
	p.EPTarget = record.epTarget
	p.HalfmoveCnt = record.halfmoveCnt
	p.hash = record.hash
	p.knightCount = record.knightCount
	p.lightBishops = record.lightBishops
	p.darkBishops = record.darkBishops

	if us == ColorBlack {
		p.FullmoveCnt--
	}
}
