// Package notation renders a [chego.Move] in Standard Algebraic Notation,
// given the position it was played from and the legal move list used to
// resolve disambiguation.
//
// See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
// Section 8.2.3.
package notation

import (
	"strings"

	"github.com/treepeck/chego"
)

// SAN encodes m, played from pos against legal, into Standard Algebraic
// Notation. isCheck/isCheckmate describe the position m leads to; the
// caller determines those by generating moves in the resulting position,
// which this package does not do itself to avoid forcing an extra
// GenerateMoves call when the caller already has one.
func SAN(m chego.Move, pos *chego.Position, legal *chego.MoveList, isCheck, isCheckmate bool) string {
	if m.Type() == chego.MoveCastling {
		if m.To().File() == chego.SC1.File() {
			return "O-O-O"
		}
		return "O-O"
	}

	piece := pos.PieceAt(m.From())
	pt := piece.Type()
	isCapture := pos.PieceAt(m.To()) != chego.PieceNone || m.Type() == chego.MoveEnPassant

	var b strings.Builder
	b.Grow(8)

	switch pt {
	case chego.Knight:
		b.WriteByte('N')
	case chego.Bishop:
		b.WriteByte('B')
	case chego.Rook:
		b.WriteByte('R')
	case chego.Queen:
		b.WriteByte('Q')
	case chego.King:
		b.WriteByte('K')
	}

	if pt != chego.Pawn {
		if d, ok := disambiguation(m, pos, legal); ok {
			b.WriteByte(d)
		}
	}

	if isCapture {
		if pt == chego.Pawn {
			b.WriteByte("abcdefgh"[m.From().File()])
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To().String())

	if m.Type() == chego.MovePromotion {
		b.WriteByte('=')
		b.WriteByte("NBRQ"[m.Promotion()])
	}

	if isCheckmate {
		b.WriteByte('#')
	} else if isCheck {
		b.WriteByte('+')
	}

	return b.String()
}

// disambiguation finds another legal move by the same kind of piece landing
// on the same square as m and reports the file or rank letter needed to tell
// them apart: the file if the two files differ, otherwise the rank. Only the
// first such move is considered, so a case that needs both file and rank is
// not handled.
func disambiguation(m chego.Move, pos *chego.Position, legal *chego.MoveList) (byte, bool) {
	piece := pos.PieceAt(m.From())
	for i := 0; i < legal.Count; i++ {
		other := legal.Moves[i]
		if other.From() == m.From() || other.To() != m.To() || pos.PieceAt(other.From()) != piece {
			continue
		}
		if other.From().File() != m.From().File() {
			return "abcdefgh"[m.From().File()], true
		}
		return byte('1' + m.From().Rank()), true
	}
	return 0, false
}
