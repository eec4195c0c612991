package chego

import "github.com/treepeck/chego/bitutil"

// maxPieceListLen bounds the pieceList capacity per colored piece type. Ten
// (two original rooks, bishops or knights plus eight promoted pawns) is the
// most any one colored piece type can reach, so a fixed array suffices
// without resorting to a slice on the hot path.
const maxPieceListLen = 10

// historyRecord journals everything [Position.MakeMove] cannot cheaply
// recompute on [Position.UndoMove]: the irreversible parts of position state
// plus enough material-tally bookkeeping to restore them in O(1).
type historyRecord struct {
	castlingRights CastlingRights
	epTarget       Square
	halfmoveCnt    int
	hash           uint64
	move           Move
	moved          Piece
	captured       Piece
	knightCount    [2]int
	lightBishops   [2]int
	darkBishops    [2]int
}

/*
Position is the complete bitboard-and-bookkeeping state of a chess game in
progress. It is created from a FEN string (including the standard start via
[InitialPos]) and from then on mutated exclusively by [Position.MakeMove]
and [Position.UndoMove]. It is not safe for concurrent mutation; a parallel
search clones the Position (via [Position.Clone]) per worker and shares only
the read-only tables built by [InitTables].
*/
type Position struct {
	// sides[c] is the occupancy bitboard of color c. pieceBB[t] is the
	// union, across both colors, of every square occupied by a piece of
	// type t. A colored piece's bitboard is sides[c] & pieceBB[t].
	sides   [2]uint64
	pieceBB [6]uint64

	// pieces[sq] gives O(1) piece lookup, redundant with the bitboards
	// above by construction.
	pieces [64]Piece

	// pieceList[piece][:pieceCount[piece]] holds the squares occupied by
	// that colored piece; pieceCount tracks the live length.
	pieceList  [12][maxPieceListLen]Square
	pieceCount [12]int

	ActiveColor    Color
	CastlingRights CastlingRights
	EPTarget       Square
	HalfmoveCnt    int
	FullmoveCnt    int

	// Scratch fields recomputed by every [Position.GenerateMoves] call: squares
	// restricted to move along a pin ray, squares a king-side interposition
	// may land on, and the bitboard of pieces currently giving check. See
	// computePinsAndCheckers.
	rookPins    uint64
	bishopPins  uint64
	checkRays   uint64
	checkers    uint64
	rookEPPins  uint64

	hash uint64

	history []historyRecord

	// positionCounts maps a Zobrist hash to the number of times that exact
	// position has occurred, for threefold-repetition detection. Reset when
	// a new game begins (i.e. on the next [NewPosition] call).
	positionCounts map[uint64]int

	// Material tallies, maintained incrementally and only recomputed on a
	// bishop/knight capture (spec §4.4 step 6); used solely to detect
	// insufficient material in O(1).
	knightCount  [2]int
	lightBishops [2]int
	darkBishops  [2]int
}

// lightSquares is the bitboard of all 32 light squares, used to classify a
// bishop as light- or dark-squared for insufficient-material detection.
const lightSquares uint64 = 0x55AA55AA55AA55AA

// placePiece sets piece on square, updating every redundant piece of state
// in lockstep: the colored/side bitboards, the pieces[] lookup, and the
// piece list.
func (p *Position) placePiece(piece Piece, square Square) {
	bb := uint64(1) << square
	c, t := piece.Color(), piece.Type()

	p.sides[c] |= bb
	p.pieceBB[t] |= bb
	p.pieces[square] = piece

	p.pieceList[piece][p.pieceCount[piece]] = square
	p.pieceCount[piece]++

	switch t {
	case Knight:
		p.knightCount[c]++
	case Bishop:
		if bb&lightSquares != 0 {
			p.lightBishops[c]++
		} else {
			p.darkBishops[c]++
		}
	}
}

// removePiece clears piece from square, the mirror image of placePiece.
func (p *Position) removePiece(piece Piece, square Square) {
	bb := uint64(1) << square
	c, t := piece.Color(), piece.Type()

	p.sides[c] &^= bb
	p.pieceBB[t] &^= bb
	p.pieces[square] = PieceNone

	list := &p.pieceList[piece]
	n := p.pieceCount[piece]
	for i := 0; i < n; i++ {
		if list[i] == square {
			list[i] = list[n-1]
			break
		}
	}
	p.pieceCount[piece]--

	switch t {
	case Knight:
		p.knightCount[c]--
	case Bishop:
		if bb&lightSquares != 0 {
			p.lightBishops[c]--
		} else {
			p.darkBishops[c]--
		}
	}
}

// PieceAt returns the piece standing on square, or [PieceNone].
func (p *Position) PieceAt(square Square) Piece { return p.pieces[square] }

// Occupancy returns the union of every occupied square.
func (p *Position) Occupancy() uint64 { return p.sides[ColorWhite] | p.sides[ColorBlack] }

// SideBB returns the occupancy bitboard of the given color.
func (p *Position) SideBB(c Color) uint64 { return p.sides[c] }

// PieceTypeBB returns the bitboard of every square occupied by a piece of
// type t, of either color.
func (p *Position) PieceTypeBB(t PieceType) uint64 { return p.pieceBB[t] }

// ColoredBB returns the bitboard of the given color's pieces of type t.
func (p *Position) ColoredBB(c Color, t PieceType) uint64 { return p.sides[c] & p.pieceBB[t] }

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceList[NewPiece(c, King)][0]
}

// Hash returns the position's current Zobrist hash.
func (p *Position) Hash() uint64 { return p.hash }

// Clone returns a deep copy of p, including its history stack, suitable for
// handing to a search worker without aliasing the original.
func (p *Position) Clone() *Position {
	clone := *p
	clone.history = append([]historyRecord(nil), p.history...)
	clone.positionCounts = make(map[uint64]int, len(p.positionCounts))
	for k, v := range p.positionCounts {
		clone.positionCounts[k] = v
	}
	return &clone
}

// insufficientMaterial implements spec §4.5's four cases: bare kings; one
// side has only same-colored bishops against a bare king; both sides have
// only same-colored bishops; or a single knight with otherwise bare kings.
func (p *Position) insufficientMaterial() bool {
	others := p.pieceBB[Queen] | p.pieceBB[Rook] | p.pieceBB[Pawn]
	if others != 0 {
		return false
	}
	totalKnights := p.knightCount[ColorWhite] + p.knightCount[ColorBlack]
	totalBishops := bitutil.CountBits(p.pieceBB[Bishop])

	if totalKnights == 0 && totalBishops == 0 {
		return true // bare kings
	}
	if totalBishops == 0 {
		return totalKnights == 1 // lone knight vs bare king
	}
	if totalKnights != 0 {
		return false // knight(s) alongside any bishop is sufficient
	}
	// Only bishops remain: sufficient unless every one of them shares a
	// square color, whether concentrated on one side or split across both.
	return p.lightBishops[ColorWhite]+p.lightBishops[ColorBlack] == 0 ||
		p.darkBishops[ColorWhite]+p.darkBishops[ColorBlack] == 0
}
