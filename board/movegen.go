package board

import (
	"termchess-local/types"
)

type offset struct {
	dc int
	dr int
}

var knightOffsets = []offset{
	{dc: -1, dr: -2}, {dc: 1, dr: -2},
	{dc: -2, dr: -1}, {dc: 2, dr: -1},
	{dc: -2, dr: 1}, {dc: 2, dr: 1},
	{dc: -1, dr: 2}, {dc: 1, dr: 2},
}

var kingOffsets = []offset{
	{dc: -1, dr: -1}, {dc: 0, dr: -1}, {dc: 1, dr: -1},
	{dc: -1, dr: 0}, {dc: 1, dr: 0},
	{dc: -1, dr: 1}, {dc: 0, dr: 1}, {dc: 1, dr: 1},
}

// LegalDestinations returns the pseudo-legal destinations of the piece on
// sq. Only piece geometry and occupancy are considered: king safety and
// whose turn it is are ignored. Empty or out-of-range squares yield an
// empty set. The set is computed fresh on every call.
func (p *Position) LegalDestinations(sq int) MoveSet {
	if !p.inRange(sq) {
		return MoveSet{}
	}
	piece, ok := p.squares[sq].Piece()
	if !ok {
		return MoveSet{}
	}

	switch piece.Kind {
	case types.Pawn:
		return p.pawnMoves(sq, piece.Side)
	case types.Knight:
		return p.leaperMoves(sq, piece.Side, knightOffsets)
	case types.Bishop:
		return p.bishopMoves(sq, piece.Side)
	case types.Rook:
		return p.rookMoves(sq, piece.Side)
	case types.Queen:
		return p.queenMoves(sq, piece.Side)
	case types.King:
		return p.leaperMoves(sq, piece.Side, kingOffsets)
	default:
		return MoveSet{}
	}
}

// admissible reports whether a piece of side may land on target:
// the square is empty or holds an opposing piece.
func (p *Position) admissible(target int, side types.Side) bool {
	occ, ok := p.squares[target].Piece()
	return !ok || occ.Side != side
}

// addRayStep records target when admissible and reports whether the ray
// continues past it.
func (p *Position) addRayStep(moves MoveSet, target int, side types.Side) bool {
	if p.admissible(target, side) {
		moves.Add(target)
	}
	return p.squares[target].IsEmpty()
}

// pawnMoves only pushes forward; pawns never capture here. The double step
// is offered from the side's starting row, i.e. the second row from its edge.
func (p *Position) pawnMoves(sq int, side types.Side) MoveSet {
	moves := MoveSet{}
	step := p.size
	startRow := 1
	if side == types.First {
		step = -p.size
		startRow = p.size - 2
	}
	_, row := p.Coords(sq)

	one := sq + step
	if !p.inRange(one) || !p.squares[one].IsEmpty() {
		return moves
	}
	moves.Add(one)

	two := one + step
	if row == startRow && p.inRange(two) && p.squares[two].IsEmpty() {
		moves.Add(two)
	}
	return moves
}

// leaperMoves handles single jumps (knight and king) by fixed offsets,
// dropping any that leave the grid in either dimension.
func (p *Position) leaperMoves(sq int, side types.Side, offsets []offset) MoveSet {
	moves := MoveSet{}
	col, row := p.Coords(sq)
	for _, o := range offsets {
		c, r := col+o.dc, row+o.dr
		if c < 0 || c >= p.size || r < 0 || r >= p.size {
			continue
		}
		target := p.Index(c, r)
		if p.admissible(target, side) {
			moves.Add(target)
		}
	}
	return moves
}

// bishopMoves casts the four diagonal rays on the flat index. The column
// x is tracked alongside so a ray stops at the left/right edge instead of
// wrapping onto the next rank.
func (p *Position) bishopMoves(sq int, side types.Side) MoveSet {
	moves := MoveSet{}
	size := p.size
	limit := size * size
	col := sq % size

	// up-left
	for t, x := sq-size-1, col-1; x >= 0 && t >= 0; t, x = t-(size+1), x-1 {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	// down-left
	for t, x := sq+size-1, col-1; x >= 0 && t < limit; t, x = t+(size-1), x-1 {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	// up-right
	for t, x := sq-size+1, col+1; x < size && t >= 0; t, x = t-(size-1), x+1 {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	// down-right
	for t, x := sq+size+1, col+1; x < size && t < limit; t, x = t+(size+1), x+1 {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	return moves
}

// rookMoves casts the four orthogonal rays. Horizontal rays are bounded by
// the row's first and last index, vertical rays by the column and the board.
func (p *Position) rookMoves(sq int, side types.Side) MoveSet {
	moves := MoveSet{}
	size := p.size
	rowStart := (sq / size) * size
	col := sq % size

	for t := sq - 1; t >= rowStart; t-- {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	for t := sq + 1; t < rowStart+size; t++ {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	for t := sq - size; t >= col; t -= size {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	for t := sq + size; t < size*size; t += size {
		if !p.addRayStep(moves, t, side) {
			break
		}
	}
	return moves
}

func (p *Position) queenMoves(sq int, side types.Side) MoveSet {
	return p.bishopMoves(sq, side).Union(p.rookMoves(sq, side))
}
