package chego

import (
	"strconv"
	"strings"

	"github.com/treepeck/chego/chlog"
	"github.com/treepeck/chego/config"
)

var fenLog = chlog.Get("fen")

// InitialPos is the FEN of the standard chess starting position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceChars = map[byte]Piece{
	'K': PieceWKing, 'Q': PieceWQueen, 'R': PieceWRook,
	'B': PieceWBishop, 'N': PieceWKnight, 'P': PieceWPawn,
	'k': PieceBKing, 'q': PieceBQueen, 'r': PieceBRook,
	'b': PieceBBishop, 'n': PieceBKnight, 'p': PieceBPawn,
}

/*
NewPosition parses the six whitespace-separated FEN fields (spec §6) into a
fresh [Position]: piece placement, side to move, castling rights, en-passant
target, halfmove clock, and fullmove counter. The Zobrist hash is computed
from scratch and positionCounts seeded with one occurrence of it.

On a malformed FEN, NewPosition returns a non-nil [*FENError] and a nil
Position.
*/
func NewPosition(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		fenLog.Warningf("expected 6 FEN fields, got %d: %q", len(fields), fen)
		return nil, &FENError{Field: -1, Reason: "expected 6 space-separated fields"}
	}

	p := &Position{EPTarget: NoSquare}
	for i := range p.pieceList {
		p.pieceCount[i] = 0
	}
	for sq := range p.pieces {
		p.pieces[sq] = PieceNone
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		fenLog.Warningf("invalid active color field: %q", fields[1])
		return nil, &FENError{Field: 1, Value: fields[1], Reason: "must be \"w\" or \"b\""}
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= CastlingWhiteLong
			case 'k':
				p.CastlingRights |= CastlingBlackShort
			case 'q':
				p.CastlingRights |= CastlingBlackLong
			default:
				return nil, &FENError{Field: 2, Value: fields[2], Reason: "unrecognized castling character"}
			}
		}
	}

	ep, ok := parseSquare(fields[3])
	if !ok {
		fenLog.Warningf("invalid en passant field: %q", fields[3])
		return nil, &FENError{Field: 3, Value: fields[3], Reason: "not \"-\" or an algebraic square"}
	}
	p.EPTarget = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, &FENError{Field: 4, Value: fields[4], Reason: "not a nonnegative integer"}
	}
	p.HalfmoveCnt = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return nil, &FENError{Field: 5, Value: fields[5], Reason: "not a nonnegative integer"}
	}
	p.FullmoveCnt = fullmove

	p.hash = computeHash(p)
	p.history = make([]historyRecord, 0, config.HistoryCapacity)
	p.positionCounts = map[uint64]int{p.hash: 1}

	return p, nil
}

// parsePlacement parses the board field (ranks 8->1, '/'-separated, digits
// expand to empty runs) and populates every bitboard/list/lookup field.
func (p *Position) parsePlacement(board string) error {
	square := 56 // a8, FEN ranks run top-down.
	for i := 0; i < len(board); i++ {
		c := board[i]
		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			piece, ok := fenPieceChars[c]
			if !ok {
				return &FENError{Field: 0, Value: string(c), Reason: "unrecognized piece character"}
			}
			if square < 0 || square > 63 {
				return &FENError{Field: 0, Value: board, Reason: "piece placement overflows the board"}
			}
			p.placePiece(piece, Square(square))
			square++
		}
	}
	return nil
}

// String serializes the position back into a FEN string.
func (p *Position) String() string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			piece := p.pieces[sq]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	if p.ActiveColor == ColorWhite {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	if p.CastlingRights == 0 {
		b.WriteByte('-')
	} else {
		if p.CastlingRights&CastlingWhiteShort != 0 {
			b.WriteByte('K')
		}
		if p.CastlingRights&CastlingWhiteLong != 0 {
			b.WriteByte('Q')
		}
		if p.CastlingRights&CastlingBlackShort != 0 {
			b.WriteByte('k')
		}
		if p.CastlingRights&CastlingBlackLong != 0 {
			b.WriteByte('q')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.EPTarget.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfmoveCnt))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveCnt))

	return b.String()
}
