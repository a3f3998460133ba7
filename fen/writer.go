package fen

import (
	"strconv"
	"strings"

	"termchess-local/board"
)

// Encode writes an n x n occupancy grid as board text, one '/'-terminated
// rank per row, with every occupied cell written as letter.
//
// Empty runs of 10 or more are written as a multi-digit count. Parse reads
// such a count back as one run, but other FEN readers expect single digits,
// so text for boards of 10 or more files is only guaranteed to round-trip
// through this package.
func Encode(grid [][]bool, letter rune) string {
	var sb strings.Builder
	for _, row := range grid {
		empty := 0
		for _, occupied := range row {
			if !occupied {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
			}
			sb.WriteRune(letter)
			empty = 0
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		sb.WriteByte('/')
	}
	return sb.String()
}

// EncodePosition writes a position back to board text, ranks separated by
// '/' with no trailing separator.
func EncodePosition(p *board.Position) string {
	var sb strings.Builder
	size := p.Size()
	for row := 0; row < size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < size; col++ {
			piece, ok := p.At(p.Index(col, row)).Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(piece.Rune())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}
