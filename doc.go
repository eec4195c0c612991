// Package chego (chess in go) implements the bitboard core of a chess
// engine: position representation, magic-indexed legal move generation,
// make/undo with a history journal, Zobrist hashing, end-of-game detection,
// and a perft traversal.
//
// chego is deliberately narrow. It has no search, no evaluation, no opening
// book, and no UCI loop — those are external collaborators that consume
// [Position.GenerateMoves], [Position.MakeMove], [Position.UndoMove], and
// [Position.IsEndOfGame]. Call [InitTables] once, early in program startup, before
// touching any other function in this package.
package chego
