package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two independently parsed identical positions must hash identically, and
// two positions differing only in side to move, castling rights, or the
// en-passant file must hash differently.
func TestComputeHashDistinguishesPositions(t *testing.T) {
	base, err := NewPosition(InitialPos)
	require.NoError(t, err)

	again, err := NewPosition(InitialPos)
	require.NoError(t, err)
	assert.Equal(t, base.Hash(), again.Hash())

	blackToMove, err := NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, base.Hash(), blackToMove.Hash())

	noCastling, err := NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, base.Hash(), noCastling.Hash())

	epSet, err := NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	epUnset, err := NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)
	assert.NotEqual(t, epSet.Hash(), epUnset.Hash())
}
