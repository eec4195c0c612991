package chego

// Perft counts the leaf nodes of the legal move tree rooted at p, depth
// plies deep — the standard move-generator correctness benchmark (spec
// §4.6). depth 0 always returns 1 (the empty sequence, counting the
// current position itself as one leaf).
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list MoveList
	p.GenerateMoves(&list)

	if depth == 1 {
		return uint64(list.Count)
	}

	var nodes uint64
	for i := 0; i < list.Count; i++ {
		p.MakeMove(list.Moves[i])
		nodes += p.Perft(depth - 1)
		p.UndoMove()
	}
	return nodes
}

// Divide returns a per-root-move leaf count, one map entry per legal move in
// p, the standard way to bisect a perft discrepancy against a reference
// engine's output down to the exact divergent branch.
func (p *Position) Divide(depth int) map[Move]uint64 {
	var list MoveList
	p.GenerateMoves(&list)

	results := make(map[Move]uint64, list.Count)
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		p.MakeMove(m)
		if depth <= 1 {
			results[m] = 1
		} else {
			results[m] = p.Perft(depth - 1)
		}
		p.UndoMove()
	}
	return results
}
