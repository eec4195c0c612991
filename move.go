package chego

import "strings"

/*
Move packs a chess move into a 16-bit value:

  - bits 0-5:   start square
  - bits 6-11:  end square
  - bits 12-13: class, see [MoveType]
  - bits 14-15: promotion piece, see [PromotionPiece] (meaningful only when
    class is [MovePromotion])
*/
type Move uint16

// NewMove packs a non-promotion move of the given class.
func NewMove(from, to Square, class MoveType) Move {
	return Move(from) | Move(to)<<6 | Move(class)<<12
}

// NewPromotionMove packs a promotion move, always of class [MovePromotion].
func NewPromotionMove(from, to Square, promo PromotionPiece) Move {
	return Move(from) | Move(to)<<6 | Move(MovePromotion)<<12 | Move(promo)<<14
}

// From returns the move's start square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the move's end square.
func (m Move) To() Square { return Square(m >> 6 & 0x3F) }

// Type returns the move's class.
func (m Move) Type() MoveType { return MoveType(m >> 12 & 0x3) }

// Promotion returns the move's promotion piece. It is only meaningful when
// Type() == [MovePromotion].
func (m Move) Promotion() PromotionPiece { return PromotionPiece(m >> 14 & 0x3) }

// String renders the move in long algebraic notation: start square, end
// square, and a lowercase promotion letter if any ("e2e4", "e7e8q").
func (m Move) String() string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type() == MovePromotion {
		b.WriteByte("nbrq"[m.Promotion()])
	}
	return b.String()
}

// ParseUCIMove parses a long-algebraic move string ("e2e4", "e7e8q") against
// the move list of legal moves from the current position, returning the
// matching [Move] and ok=true, or ok=false if no legal move matches. This is
// the bridge a UCI loop uses to turn "position ... moves e2e4" tokens into
// values [Position.MakeMove] accepts.
func ParseUCIMove(str string, legal *MoveList) (m Move, ok bool) {
	if len(str) < 4 {
		return 0, false
	}
	from, okFrom := parseSquare(str[0:2])
	to, okTo := parseSquare(str[2:4])
	if !okFrom || !okTo {
		return 0, false
	}
	var promo PromotionPiece = -1
	if len(str) >= 5 {
		switch str[4] {
		case 'n':
			promo = PromotionKnight
		case 'b':
			promo = PromotionBishop
		case 'r':
			promo = PromotionRook
		case 'q':
			promo = PromotionQueen
		}
	}
	for i := 0; i < int(legal.Count); i++ {
		cand := legal.Moves[i]
		if cand.From() != from || cand.To() != to {
			continue
		}
		if cand.Type() == MovePromotion && cand.Promotion() != promo {
			continue
		}
		return cand, true
	}
	return 0, false
}

// MaxMoves bounds the number of legal moves any chess position can have.
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
const MaxMoves = 218

/*
MoveList stores the legal moves produced by a single [Position.GenerateMoves] call in
a preallocated fixed-size array, avoiding heap allocation on the move
generation hot path.
*/
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Reset empties the list for reuse without reallocating its backing array.
func (l *MoveList) Reset() { l.Count = 0 }

// Slice returns the populated portion of the list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }
