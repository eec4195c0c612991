package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceAndRemovePieceKeepsBitboardsConsistent(t *testing.T) {
	p, err := NewPosition("8/8/8/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)

	p.placePiece(PieceWKnight, SD4)
	assert.Equal(t, PieceWKnight, p.PieceAt(SD4))
	assert.NotZero(t, p.ColoredBB(ColorWhite, Knight)&(uint64(1)<<SD4))
	assert.Equal(t, 1, p.knightCount[ColorWhite])

	p.removePiece(PieceWKnight, SD4)
	assert.Equal(t, PieceNone, p.PieceAt(SD4))
	assert.Zero(t, p.ColoredBB(ColorWhite, Knight))
	assert.Equal(t, 0, p.knightCount[ColorWhite])
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := NewPosition(InitialPos)
	require.NoError(t, err)

	clone := p.Clone()
	clone.MakeMove(NewMove(SE2, SE4, MoveNormal))

	assert.Equal(t, InitialPos, p.String())
	assert.NotEqual(t, p.String(), clone.String())
	assert.NotEqual(t, p.positionCounts, nil)
}

func TestKingSquare(t *testing.T) {
	p, err := NewPosition(InitialPos)
	require.NoError(t, err)
	assert.Equal(t, SE1, p.KingSquare(ColorWhite))
	assert.Equal(t, SE8, p.KingSquare(ColorBlack))
}

func TestInsufficientMaterialLoneKnight(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.insufficientMaterial())
}

func TestInsufficientMaterialKnightAndBishopIsSufficient(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/8/2BNK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.insufficientMaterial())
}

func TestInsufficientMaterialWithPawnIsSufficient(t *testing.T) {
	p, err := NewPosition("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.insufficientMaterial())
}
