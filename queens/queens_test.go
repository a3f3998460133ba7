package queens

import (
	"reflect"
	"testing"

	"termchess-local/board"
	"termchess-local/fen"
	"termchess-local/types"
)

func TestSolutionCounts(t *testing.T) {
	want := []int{1, 0, 0, 2, 10, 4, 40, 92}
	for i, w := range want {
		n := i + 1
		if got := Count(n); got != w {
			t.Errorf("Count(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestSolveInvalidSize(t *testing.T) {
	if got := Solve(0); len(got) != 0 {
		t.Errorf("Solve(0) returned %d solutions", len(got))
	}
	if got := Solve(-3); len(got) != 0 {
		t.Errorf("Solve(-3) returned %d solutions", len(got))
	}
}

func TestSolutionsAreValid(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for _, sol := range Solve(n) {
			cols := sol.Columns()
			if len(cols) != n {
				t.Fatalf("n=%d: %d rows, want %d", n, len(cols), n)
			}
			for r1 := 0; r1 < n; r1++ {
				if cols[r1] < 0 {
					t.Fatalf("n=%d: row %d has no queen", n, r1)
				}
				for r2 := r1 + 1; r2 < n; r2++ {
					dc := cols[r1] - cols[r2]
					dr := r1 - r2
					if dc == 0 || dc == dr || dc == -dr {
						t.Errorf("n=%d: queens on rows %d and %d attack each other: %v", n, r1, r2, cols)
					}
				}
			}
		}
	}
}

func TestSolutionOrder(t *testing.T) {
	sols := Solve(4)
	if len(sols) != 2 {
		t.Fatalf("Solve(4) = %d solutions, want 2", len(sols))
	}
	if got := sols[0].Columns(); !reflect.DeepEqual(got, []int{1, 3, 0, 2}) {
		t.Errorf("first solution = %v, want [1 3 0 2]", got)
	}
	if got := sols[1].Columns(); !reflect.DeepEqual(got, []int{2, 0, 3, 1}) {
		t.Errorf("second solution = %v, want [2 0 3 1]", got)
	}
}

func TestSolutionsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, text := range FEN(8) {
		if seen[text] {
			t.Errorf("duplicate solution %q", text)
		}
		seen[text] = true
	}
}

func TestFEN(t *testing.T) {
	got := FEN(4)
	want := []string{"1Q2/3Q/Q3/2Q1/", "2Q1/Q3/3Q/1Q2/"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FEN(4) = %v, want %v", got, want)
	}
	if got := FEN(1); !reflect.DeepEqual(got, []string{"Q/"}) {
		t.Errorf("FEN(1) = %v", got)
	}
	if got := FEN(3); len(got) != 0 {
		t.Errorf("FEN(3) = %v, want none", got)
	}
}

func TestFENRoundTrip(t *testing.T) {
	for n := 1; n < 10; n++ {
		sols := Solve(n)
		texts := FEN(n)
		if len(texts) != len(sols) {
			t.Fatalf("n=%d: %d texts for %d solutions", n, len(texts), len(sols))
		}
		for i, text := range texts {
			p := fen.Parse(text, n)
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					piece, occupied := p.At(r*n + c).Piece()
					if occupied != sols[i][r][c] {
						t.Fatalf("n=%d solution %d: square (%d,%d) occupied=%v, want %v (text %q)",
							n, i, r, c, occupied, sols[i][r][c], text)
					}
					if occupied && piece != (types.Piece{Kind: types.Queen, Side: types.First}) {
						t.Fatalf("n=%d: square (%d,%d) = %+v, want white queen", n, r, c, piece)
					}
				}
			}
		}
	}
}

// Turning every other queen into an enemy piece, no queen may reach one.
func TestQueensDoNotAttackOnParsedBoard(t *testing.T) {
	const n = 6
	for _, text := range FEN(n) {
		squares := fen.Parse(text, n).Squares()
		for sq, s := range squares {
			if s.IsEmpty() {
				continue
			}
			marked := make([]types.Square, len(squares))
			for i, other := range squares {
				if i != sq && !other.IsEmpty() {
					other = types.Occupied(types.Piece{Kind: types.Queen, Side: types.Second})
				}
				marked[i] = other
			}
			p := board.New(n, marked)
			for dest := range p.LegalDestinations(sq) {
				if !p.At(dest).IsEmpty() {
					t.Errorf("%s: queen on %d attacks square %d", text, sq, dest)
				}
			}
		}
	}
}
