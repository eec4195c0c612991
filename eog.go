package chego

// IsEndOfGame evaluates every game-ending condition against p in the order
// spec §4.5 mandates: threefold repetition, then the fifty-move rule, then
// insufficient material, then stalemate, then checkmate. legal is the
// current position's legal move list, typically the one GenerateMoves just
// filled; IsEndOfGame does not regenerate it.
func (p *Position) IsEndOfGame(legal *MoveList) ExitCode {
	if p.positionCounts[p.hash] >= 3 {
		return ThreefoldRepetition
	}
	if p.HalfmoveCnt >= 100 {
		return FiftyMovesRule
	}
	if p.insufficientMaterial() {
		return InsufficientMaterial
	}
	if legal.Count > 0 {
		return NormalPly
	}
	if p.checkers != 0 {
		if p.ActiveColor == ColorWhite {
			return BlackWins
		}
		return WhiteWins
	}
	return Stalemate
}
