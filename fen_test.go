package chego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPositionStartingPosition(t *testing.T) {
	p, err := NewPosition(InitialPos)
	require.NoError(t, err)

	assert.Equal(t, ColorWhite, p.ActiveColor)
	assert.Equal(t, CastlingWhiteShort|CastlingWhiteLong|CastlingBlackShort|CastlingBlackLong, p.CastlingRights)
	assert.Equal(t, NoSquare, p.EPTarget)
	assert.Equal(t, 0, p.HalfmoveCnt)
	assert.Equal(t, 1, p.FullmoveCnt)
	assert.Equal(t, PieceWRook, p.PieceAt(SA1))
	assert.Equal(t, PieceWKing, p.PieceAt(SE1))
	assert.Equal(t, PieceBPawn, p.PieceAt(SA7))
	assert.Equal(t, PieceNone, p.PieceAt(SE4))
	assert.Equal(t, SE1, p.KingSquare(ColorWhite))
	assert.Equal(t, SE8, p.KingSquare(ColorBlack))
}

func TestNewPositionRoundTrip(t *testing.T) {
	fens := []string{
		InitialPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPosition(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.String())
	}
}

func TestNewPositionRejectsMalformedFEN(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad active color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", // negative halfmove
	}
	for _, fen := range cases {
		_, err := NewPosition(fen)
		require.Error(t, err)
		var fenErr *FENError
		require.ErrorAs(t, err, &fenErr)
	}
}

func TestHashMatchesFromScratchComputation(t *testing.T) {
	p, err := NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	assert.Equal(t, computeHash(p), p.Hash())
}
