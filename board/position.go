// Package board holds the square-grid position and its move generation.
package board

import (
	"termchess-local/types"
)

// Position is a size x size grid stored row-major: index = row*size + col.
// Row 0 is the first rank of the board text.
type Position struct {
	squares []types.Square
	size    int
}

// New builds a position from squares. The slice is padded with empty
// squares or cut so its length is always size*size.
func New(size int, squares []types.Square) *Position {
	if size < 0 {
		size = 0
	}
	n := size * size
	sq := make([]types.Square, n)
	copy(sq, squares)
	return &Position{squares: sq, size: size}
}

// Size returns the board dimension.
func (p *Position) Size() int {
	return p.size
}

// Squares returns a copy of the square array.
func (p *Position) Squares() []types.Square {
	out := make([]types.Square, len(p.squares))
	copy(out, p.squares)
	return out
}

// At returns the square at index sq. Out-of-range indices read as empty.
func (p *Position) At(sq int) types.Square {
	if !p.inRange(sq) {
		return types.Empty()
	}
	return p.squares[sq]
}

// Index converts (col, row) to a square index.
func (p *Position) Index(col, row int) int {
	return row*p.size + col
}

// Coords converts a square index to (col, row).
func (p *Position) Coords(sq int) (col, row int) {
	return sq % p.size, sq / p.size
}

// Count returns how many squares hold the given piece.
func (p *Position) Count(piece types.Piece) int {
	n := 0
	for _, s := range p.squares {
		if occ, ok := s.Piece(); ok && occ == piece {
			n++
		}
	}
	return n
}

// Material sums piece values; positive favours First.
func (p *Position) Material() int {
	total := 0
	for _, s := range p.squares {
		if occ, ok := s.Piece(); ok {
			total += occ.Value()
		}
	}
	return total
}

func (p *Position) inRange(sq int) bool {
	return sq >= 0 && sq < len(p.squares)
}

// ApplyMove relocates the piece on from to to and flips state.Turn.
// It does nothing and returns false unless from != to, both squares are on
// the board, from is occupied and to is in legal. legal must come from
// LegalDestinations(from); it is not recomputed here.
// When state.EnforceTurn is set the mover must also belong to state.Turn.
// The captured piece, if any, is simply overwritten.
func (p *Position) ApplyMove(from, to int, legal MoveSet, state *types.GameState) bool {
	if from == to || !p.inRange(from) || !p.inRange(to) {
		return false
	}
	piece, ok := p.squares[from].Piece()
	if !ok {
		return false
	}
	if !legal.Contains(to) {
		return false
	}
	if state != nil && state.EnforceTurn && piece.Side != state.Turn {
		return false
	}

	if state != nil {
		state.SwitchTurn()
	}
	p.squares[to] = p.squares[from]
	p.squares[from] = types.Empty()
	return true
}
