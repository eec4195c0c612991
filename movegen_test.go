package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treepeck/chego/bitutil"
)

func legalMoves(t *testing.T, fen string) (*Position, MoveList) {
	t.Helper()
	p, err := NewPosition(fen)
	require.NoError(t, err)
	var list MoveList
	p.GenerateMoves(&list)
	return p, list
}

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	_, list := legalMoves(t, InitialPos)
	assert.Equal(t, 20, list.Count)
}

// Fool's mate: the position after 1. f3 e5 2. g4 Qh4# has exactly zero
// legal moves for White and the king in check.
func TestGenerateMovesCheckmateHasNoMoves(t *testing.T) {
	p, list := legalMoves(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, 0, list.Count)
	assert.NotZero(t, p.checkers)
	assert.Equal(t, BlackWins, p.IsEndOfGame(&list))
}

// Stalemate: Black to move, king has no safe square and no other piece can
// move; a standard textbook stalemate position.
func TestGenerateMovesStalemate(t *testing.T) {
	p, list := legalMoves(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.Equal(t, 0, list.Count)
	assert.Zero(t, p.checkers)
	assert.Equal(t, Stalemate, p.IsEndOfGame(&list))
}

// An absolutely pinned rook may still slide along the pinning ray.
func TestGenerateMovesPinnedPieceMovesAlongRay(t *testing.T) {
	_, list := legalMoves(t, "4k3/8/8/8/8/4r3/4R3/4K3 w - - 0 1")
	found := false
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.From() != SE2 {
			continue
		}
		// The pinned rook must never leave the e-file.
		assert.Equal(t, SE2.File(), m.To().File())
		if m.To() == SE3 {
			found = true
		}
	}
	assert.True(t, found, "pinned rook should be able to capture the pinning piece")
}

// A pinned knight has no legal moves at all.
func TestGenerateMovesPinnedKnightCannotMove(t *testing.T) {
	_, list := legalMoves(t, "4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	for i := 0; i < list.Count; i++ {
		assert.NotEqual(t, SE2, list.Moves[i].From(), "pinned knight has no legal move")
	}
}

// In single check by a knight, the only legal moves are king moves and
// capturing the checking knight.
func TestGenerateMovesSingleCheckRestrictsToCheckRay(t *testing.T) {
	p, list := legalMoves(t, "4k3/8/8/8/8/3n4/4P3/4K3 w - - 0 1")
	require.NotZero(t, p.checkers)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		assert.Truef(t, m.From() == p.KingSquare(ColorWhite) || m.To() == SD3,
			"move %s is neither a king move nor a capture of the checker", m)
	}
}

// Double check: only king moves remain legal.
func TestGenerateMovesDoubleCheckOnlyKingMoves(t *testing.T) {
	p, list := legalMoves(t, "4k3/8/8/8/8/2bn4/8/4K3 w - - 0 1")
	require.Equal(t, 2, bitutil.CountBits(p.checkers))
	for i := 0; i < list.Count; i++ {
		assert.Equal(t, SE1, list.Moves[i].From())
	}
}

func TestGenerateMovesEnPassantCapture(t *testing.T) {
	_, list := legalMoves(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	found := false
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Type() == MoveEnPassant {
			found = true
			assert.Equal(t, SE5, list.Moves[i].From())
			assert.Equal(t, SD6, list.Moves[i].To())
		}
	}
	assert.True(t, found)
}

// The en-passant capture is illegal here because removing both pawns from
// the fourth rank would expose the black king to the white rook.
func TestGenerateMovesEnPassantDiscoveredCheckForbidden(t *testing.T) {
	_, list := legalMoves(t, "8/8/8/8/k2pP2R/8/8/4K3 b - - 0 1")
	p2, err := NewPosition("8/8/8/8/k2pP2R/8/8/4K3 b - e3 0 1")
	require.NoError(t, err)
	var list2 MoveList
	p2.GenerateMoves(&list2)
	for i := 0; i < list2.Count; i++ {
		assert.NotEqual(t, MoveEnPassant, list2.Moves[i].Type())
	}
	_ = list
}

func TestGenerateMovesCastling(t *testing.T) {
	_, list := legalMoves(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	castles := 0
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Type() == MoveCastling {
			castles++
		}
	}
	assert.Equal(t, 2, castles)
}

// The king cannot castle through an attacked square.
func TestGenerateMovesCastlingBlockedByAttack(t *testing.T) {
	_, list := legalMoves(t, "r3k2r/8/8/8/8/3b4/8/R3K2R w KQkq - 0 1")
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Type() == MoveCastling {
			assert.NotEqual(t, SG1, list.Moves[i].To(), "short castling passes through f1, attacked by the bishop")
		}
	}
}

func TestGenerateMovesPromotion(t *testing.T) {
	_, list := legalMoves(t, "4k3/4P3/8/8/8/8/8/4K3 w - - 0 1")
	promos := 0
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Type() == MovePromotion && list.Moves[i].From() == SE7 {
			promos++
		}
	}
	assert.Equal(t, 4, promos)
}
