package board

import (
	"strconv"
	"strings"
)

// String draws the position one rank per line, '.' for empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < p.size; row++ {
		for col := 0; col < p.size; col++ {
			if piece, ok := p.squares[p.Index(col, row)].Piece(); ok {
				sb.WriteRune(piece.Rune())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SquareName returns a file/rank label like "e2" for sq, with rank 1 at the
// bottom row. Files past 'z' are not meaningful.
func (p *Position) SquareName(sq int) string {
	if !p.inRange(sq) {
		return "-"
	}
	col, row := p.Coords(sq)
	return string(rune('a'+col)) + strconv.Itoa(p.size-row)
}
