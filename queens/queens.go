// Package queens enumerates every N-Queens placement by exhaustive
// backtracking and writes each one as board text.
package queens

import (
	"github.com/golang/glog"

	"termchess-local/fen"
)

// Solution is an n x n grid, true where a queen stands. Indexed [row][col].
type Solution [][]bool

// Columns returns the queen's column for each row.
func (s Solution) Columns() []int {
	cols := make([]int, len(s))
	for r, row := range s {
		cols[r] = -1
		for c, q := range row {
			if q {
				cols[r] = c
				break
			}
		}
	}
	return cols
}

type solver struct {
	n     int
	cols  map[int]bool // used columns
	diffs map[int]bool // used row-col diagonals
	sums  map[int]bool // used row+col diagonals
	grid  [][]bool
	found []Solution
}

// Solve returns all placements of n non-attacking queens on an n x n board.
// Columns are tried left to right on each row, so solutions come out in
// lexicographic order of their column sequences. There is no pruning beyond
// the three conflict sets and no early exit; the cost grows quickly with n.
func Solve(n int) []Solution {
	if n < 1 {
		return nil
	}
	s := &solver{
		n:     n,
		cols:  make(map[int]bool),
		diffs: make(map[int]bool),
		sums:  make(map[int]bool),
		grid:  make([][]bool, n),
	}
	for i := range s.grid {
		s.grid[i] = make([]bool, n)
	}
	s.place(0)
	glog.V(1).Infof("queens: n=%d solutions=%d", n, len(s.found))
	return s.found
}

func (s *solver) place(row int) {
	if row == s.n {
		s.found = append(s.found, s.snapshot())
		return
	}
	for col := 0; col < s.n; col++ {
		if s.cols[col] || s.diffs[row-col] || s.sums[row+col] {
			continue
		}

		s.cols[col] = true
		s.diffs[row-col] = true
		s.sums[row+col] = true
		s.grid[row][col] = true

		s.place(row + 1)

		delete(s.cols, col)
		delete(s.diffs, row-col)
		delete(s.sums, row+col)
		s.grid[row][col] = false
	}
}

func (s *solver) snapshot() Solution {
	out := make(Solution, s.n)
	for i, row := range s.grid {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Count returns the number of solutions for n.
func Count(n int) int {
	return len(Solve(n))
}

// FEN solves n and writes every solution as '/'-terminated board text
// with queens as 'Q', ready for fen.Parse with size n.
func FEN(n int) []string {
	solutions := Solve(n)
	out := make([]string, 0, len(solutions))
	for _, sol := range solutions {
		out = append(out, fen.Encode(sol, 'Q'))
	}
	return out
}
