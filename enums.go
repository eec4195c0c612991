package chego

// Color identifies the side to move or the side owning a piece.
type Color int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// PieceType is the uncolored kind of a chess piece. NoPieceType marks an
// empty square.
type PieceType int

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NoPieceType
)

// Piece is the full tagged variant over {White,Black} x {King,...,Pawn} plus
// the sentinel PieceNone, 13 values in total. It is stored flat (rather than
// as a Color/PieceType pair) so it is stored as is in [Position.pieces] and
// indexes the per-piece piece lists without a conversion step.
type Piece int

const (
	PieceWKing Piece = iota
	PieceWQueen
	PieceWRook
	PieceWBishop
	PieceWKnight
	PieceWPawn
	PieceBKing
	PieceBQueen
	PieceBRook
	PieceBBishop
	PieceBKnight
	PieceBPawn
	PieceNone
)

// pieceSymbols maps every colored piece to its FEN letter.
var pieceSymbols = [12]byte{
	'K', 'Q', 'R', 'B', 'N', 'P',
	'k', 'q', 'r', 'b', 'n', 'p',
}

// NewPiece composes the flat [Piece] value for the given color and type.
// NoPieceType maps to [PieceNone] regardless of color.
func NewPiece(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return PieceNone
	}
	if c == ColorWhite {
		return Piece(t)
	}
	return Piece(t) + PieceBKing
}

// Type extracts the uncolored piece type, or NoPieceType for [PieceNone].
func (p Piece) Type() PieceType {
	if p == PieceNone {
		return NoPieceType
	}
	if p >= PieceBKing {
		return PieceType(p - PieceBKing)
	}
	return PieceType(p)
}

// Color extracts the owning side. The result is meaningless for [PieceNone].
func (p Piece) Color() Color {
	if p >= PieceBKing {
		return ColorBlack
	}
	return ColorWhite
}

// String returns the FEN letter for the piece, or "." for [PieceNone].
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	return string(pieceSymbols[p])
}

// CastlingRights is a 4-bit set of the remaining castling permissions.
type CastlingRights int

const (
	CastlingWhiteShort CastlingRights = 1 << iota
	CastlingWhiteLong
	CastlingBlackShort
	CastlingBlackLong

	castlingAll = CastlingWhiteShort | CastlingWhiteLong |
		CastlingBlackShort | CastlingBlackLong
)

// MoveType is the class tag packed into bits 12-13 of a [Move].
type MoveType int

const (
	MoveNormal MoveType = iota
	MovePromotion
	MoveEnPassant
	MoveCastling
)

// PromotionPiece is the piece tag packed into bits 14-15 of a [Move],
// meaningful only when the move's type is [MovePromotion].
type PromotionPiece int

const (
	PromotionKnight PromotionPiece = iota
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// pieceType maps a [PromotionPiece] to the [PieceType] it produces.
func (pp PromotionPiece) pieceType() PieceType {
	switch pp {
	case PromotionBishop:
		return Bishop
	case PromotionRook:
		return Rook
	case PromotionQueen:
		return Queen
	default:
		return Knight
	}
}

// ExitCode enumerates the possible outcomes reported by [IsEndOfGame].
type ExitCode int

const (
	NormalPly ExitCode = iota
	WhiteWins
	BlackWins
	Stalemate
	ThreefoldRepetition
	FiftyMovesRule
	InsufficientMaterial
)

// String renders the exit code for logs and debug output.
func (e ExitCode) String() string {
	switch e {
	case NormalPly:
		return "normal"
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMovesRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}
