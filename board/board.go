// Package board renders a [chego.Position] as an 8x8 text diagram, the kind
// of debugging aid a perft/UCI CLI prints alongside a FEN when a search
// needs to be eyeballed by a human.
package board

import (
	"strings"

	"github.com/treepeck/chego"
)

// String renders p's current piece placement, rank 8 at the top, files
// a-h left to right, with a coordinate border.
func String(p *chego.Position) string {
	var b strings.Builder
	b.Grow(256)

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := chego.Square(rank*8 + file)
			b.WriteString(p.PieceAt(sq).String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h\n")

	return b.String()
}
