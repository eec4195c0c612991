package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUndoRoundTrip plays every legal move from a handful of positions
// one ply deep and checks that UndoMove restores the position exactly:
// same FEN, same hash, and a from-scratch hash recomputation agreeing with
// the incrementally maintained one.
func TestMakeUndoRoundTrip(t *testing.T) {
	fens := []string{
		InitialPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}

	for _, fen := range fens {
		p, err := NewPosition(fen)
		require.NoError(t, err)

		var list MoveList
		p.GenerateMoves(&list)

		for i := 0; i < list.Count; i++ {
			before := p.String()
			beforeHash := p.Hash()

			p.MakeMove(list.Moves[i])
			p.UndoMove()

			assert.Equalf(t, before, p.String(), "move %s did not round-trip", list.Moves[i])
			assert.Equal(t, beforeHash, p.Hash())
			assert.Equal(t, computeHash(p), p.Hash())
		}
	}
}

// TestMakeMoveCastlingMovesRook checks that castling relocates both the
// king and the rook in a single MakeMove call.
func TestMakeMoveCastlingMovesRook(t *testing.T) {
	p, err := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	p.MakeMove(NewMove(SE1, SG1, MoveCastling))

	assert.Equal(t, PieceWKing, p.PieceAt(SG1))
	assert.Equal(t, PieceWRook, p.PieceAt(SF1))
	assert.Equal(t, PieceNone, p.PieceAt(SE1))
	assert.Equal(t, PieceNone, p.PieceAt(SH1))
	assert.Equal(t, CastlingBlackShort|CastlingBlackLong, p.CastlingRights)
}

// TestMakeMoveRookCaptureRevokesCastling checks that capturing an
// untouched rook on its home square revokes that side's castling right.
func TestMakeMoveRookCaptureRevokesCastling(t *testing.T) {
	p, err := NewPosition("r3k2r/8/8/8/8/8/8/R3K3 w Qkq - 0 1")
	require.NoError(t, err)

	p.MakeMove(NewMove(SA1, SA8, MoveNormal))

	assert.Equal(t, CastlingBlackShort, p.CastlingRights)
}

// TestMakeMoveResetsHalfmoveOnPawnMoveOrCapture checks the fifty-move
// counter semantics: reset on a pawn move or a capture, incremented
// otherwise.
func TestMakeMoveResetsHalfmoveOnPawnMoveOrCapture(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/4P3/4K3 w - - 10 6")
	require.NoError(t, err)

	p.MakeMove(NewMove(SE2, SE4, MoveNormal))
	assert.Equal(t, 0, p.HalfmoveCnt)

	p2, err := NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 10 6")
	require.NoError(t, err)
	p2.MakeMove(NewMove(SE1, SE2, MoveNormal))
	assert.Equal(t, 11, p2.HalfmoveCnt)
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := NewPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	p.MakeMove(NewMove(SE5, SD6, MoveEnPassant))

	assert.Equal(t, PieceNone, p.PieceAt(SD5))
	assert.Equal(t, PieceWPawn, p.PieceAt(SD6))
	assert.Equal(t, NoSquare, p.EPTarget)
}

func TestMakeMovePromotion(t *testing.T) {
	p, err := NewPosition("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	p.MakeMove(NewPromotionMove(SE7, SE8, PromotionQueen))

	assert.Equal(t, PieceWQueen, p.PieceAt(SE8))
	assert.Equal(t, PieceNone, p.PieceAt(SE7))
}
