// Package fen reads and writes the piece-placement field of FEN: ranks
// separated by '/', digit runs for empty squares, letters for pieces.
package fen

import (
	"strconv"

	"termchess-local/board"
	"termchess-local/types"
)

// Parse builds a size x size position from board text. It never fails:
// unknown characters become empty squares, a rank that ends early is
// padded to size, and the board is padded (or cut) to size*size squares.
// Consecutive digits form one count, so "10" is ten empty squares.
func Parse(text string, size int) *board.Position {
	if size < 1 {
		return board.New(0, nil)
	}
	return board.New(size, readSquares(text, size))
}

// readSquares decodes text into at most size*size squares.
func readSquares(text string, size int) []types.Square {
	capacity := size * size
	squares := make([]types.Square, 0, capacity)
	col := 0

	runes := []rune(text)
	for i := 0; i < len(runes) && len(squares) < capacity; i++ {
		ch := runes[i]

		if isDigit(ch) {
			start := i
			for i < len(runes) && isDigit(runes[i]) {
				i++
			}
			count := emptyRun(string(runes[start:i]), capacity-len(squares))
			for j := 0; j < count; j++ {
				squares = append(squares, types.Empty())
			}
			col += count
			i-- // reprocess the character that ended the run
			continue
		}

		if ch == '/' {
			for ; col < size && len(squares) < capacity; col++ {
				squares = append(squares, types.Empty())
			}
			col = 0
			continue
		}

		col++
		if p, ok := types.PieceFromRune(ch); ok {
			squares = append(squares, types.Occupied(p))
		} else {
			squares = append(squares, types.Empty())
		}
	}

	return squares
}

// emptyRun converts a digit run to a count, capped at limit so oversized
// numbers cannot allocate past the board.
func emptyRun(digits string, limit int) int {
	if limit < 0 {
		limit = 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > limit {
		// Atoi only fails here on overflow
		return limit
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
