package board

import "sort"

// MoveSet is an unordered set of destination square indices.
type MoveSet map[int]struct{}

// NewMoveSet creates a set holding the given squares.
func NewMoveSet(squares ...int) MoveSet {
	s := make(MoveSet, len(squares))
	for _, sq := range squares {
		s.Add(sq)
	}
	return s
}

// Add inserts a square.
func (s MoveSet) Add(sq int) {
	s[sq] = struct{}{}
}

// Contains returns true if sq is in the set. A nil set contains nothing.
func (s MoveSet) Contains(sq int) bool {
	_, ok := s[sq]
	return ok
}

// Len returns the number of squares in the set.
func (s MoveSet) Len() int {
	return len(s)
}

// Union adds every square of other to s and returns s.
func (s MoveSet) Union(other MoveSet) MoveSet {
	for sq := range other {
		s.Add(sq)
	}
	return s
}

// Sorted returns the squares in ascending order.
func (s MoveSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for sq := range s {
		out = append(out, sq)
	}
	sort.Ints(out)
	return out
}
