package board_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/notnil/chess"

	"termchess-local/board"
	"termchess-local/fen"
)

// idx converts a square name like "d5" on an 8x8 board to its index.
func idx(name string) int {
	col := int(name[0] - 'a')
	row := 8 - int(name[1]-'0')
	return row*8 + col
}

func sorted(squares ...string) []int {
	set := board.NewMoveSet()
	for _, s := range squares {
		set.Add(idx(s))
	}
	return set.Sorted()
}

func TestKnightOnEmptyBoard(t *testing.T) {
	cases := []struct {
		text string
		from string
		want int
	}{
		{"N7/8/8/8/8/8/8/8", "a8", 2},
		{"7N/8/8/8/8/8/8/8", "h8", 2},
		{"8/8/8/8/8/8/8/N7", "a1", 2},
		{"8/8/8/8/8/8/8/7N", "h1", 2},
		{"8/8/8/8/3N4/8/8/8", "d4", 8},
		{"8/8/8/4N3/8/8/8/8", "e5", 8},
		{"8/8/8/8/8/8/8/1N6", "b1", 3},
		{"8/8/8/8/7N/8/8/8", "h4", 4},
	}
	for _, c := range cases {
		p := fen.Parse(c.text, 8)
		if got := p.LegalDestinations(idx(c.from)).Len(); got != c.want {
			t.Errorf("knight on %s: %d destinations, want %d", c.from, got, c.want)
		}
	}
}

func TestKnightOccupancy(t *testing.T) {
	// c2 holds a friendly pawn, b3 an enemy pawn
	p := fen.Parse("8/8/8/8/8/1p6/2P5/N7", 8)
	got := p.LegalDestinations(idx("a1")).Sorted()
	want := sorted("b3")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("knight a1 = %v, want %v", got, want)
	}
}

func TestRookStopsAtFirstPiece(t *testing.T) {
	p := fen.Parse("8/3n4/8/1p1R2P1/8/8/3N4/8", 8)
	got := p.LegalDestinations(idx("d5")).Sorted()
	want := sorted(
		"c5", "b5", // stops on the black pawn
		"e5", "f5", // blocked by own pawn on g5
		"d6", "d7", // captures the knight
		"d4", "d3", // blocked by own knight on d2
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rook d5 = %v, want %v", got, want)
	}
}

func TestRookEmptyBoard(t *testing.T) {
	p := fen.Parse("8/8/8/8/8/8/8/R7", 8)
	if got := p.LegalDestinations(idx("a1")).Len(); got != 14 {
		t.Errorf("rook a1: %d destinations, want 14", got)
	}
	p = fen.Parse("8/8/8/8/8/8/8/7R", 8)
	got := p.LegalDestinations(idx("h1"))
	if got.Contains(idx("a2")) {
		t.Error("rook on h1 wrapped onto the next rank")
	}
}

func TestBishopDoesNotWrap(t *testing.T) {
	p := fen.Parse("8/8/8/8/7B/8/8/8", 8)
	got := p.LegalDestinations(idx("h4")).Sorted()
	want := sorted("g5", "f6", "e7", "d8", "g3", "f2", "e1")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bishop h4 = %v, want %v", got, want)
	}

	p = fen.Parse("8/8/8/8/B7/8/8/8", 8)
	got = p.LegalDestinations(idx("a4")).Sorted()
	want = sorted("b5", "c6", "d7", "e8", "b3", "c2", "d1")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bishop a4 = %v, want %v", got, want)
	}
}

func TestBishopBlocked(t *testing.T) {
	p := fen.Parse("8/8/5p2/8/3B4/2P5/8/8", 8)
	got := p.LegalDestinations(idx("d4")).Sorted()
	want := sorted(
		"e5", "f6",
		"c5", "b6", "a7",
		"e3", "f2", "g1",
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bishop d4 = %v, want %v", got, want)
	}
}

func TestQueenIsBishopPlusRook(t *testing.T) {
	layouts := []string{
		"8/8/8/3X4/8/8/8/8",
		"X7/8/8/8/8/8/8/8",
		"8/1p3n2/8/3X1P2/8/5b2/3N4/8",
		"7X/6P1/8/8/8/8/8/8",
		"r1b1k1nr/p2p1pNp/n2B4/1p1NP2P/6P1/3P1X2/P1P1K3/q5b1",
	}
	for _, layout := range layouts {
		from := findX(layout)
		queen := fen.Parse(strings.Replace(layout, "X", "Q", 1), 8).LegalDestinations(from)
		bishop := fen.Parse(strings.Replace(layout, "X", "B", 1), 8).LegalDestinations(from)
		rook := fen.Parse(strings.Replace(layout, "X", "R", 1), 8).LegalDestinations(from)

		union := board.NewMoveSet().Union(bishop).Union(rook)
		if !reflect.DeepEqual(queen.Sorted(), union.Sorted()) {
			t.Errorf("%s: queen = %v, bishop+rook = %v", layout, queen.Sorted(), union.Sorted())
		}
	}
}

// findX returns the square index of the 'X' marker in an 8x8 layout.
func findX(layout string) int {
	sq := 0
	for _, ch := range layout {
		switch {
		case ch == 'X':
			return sq
		case ch == '/':
			if rem := sq % 8; rem != 0 {
				sq += 8 - rem
			}
		case ch >= '1' && ch <= '9':
			sq += int(ch - '0')
		default:
			sq++
		}
	}
	return -1
}

func TestPawnMoves(t *testing.T) {
	p := fen.Parse(fen.StartingPosition, 8)
	cases := []struct {
		from string
		want []int
	}{
		{"e2", sorted("e3", "e4")},
		{"a2", sorted("a3", "a4")},
		{"e7", sorted("e6", "e5")},
		{"h7", sorted("h6", "h5")},
	}
	for _, c := range cases {
		got := p.LegalDestinations(idx(c.from)).Sorted()
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("pawn %s = %v, want %v", c.from, got, c.want)
		}
	}
}

func TestPawnNoCaptureAndBlocking(t *testing.T) {
	// White pawn on d4 faces a black pawn on d5 with black pieces on c5 and e5.
	p := fen.Parse("8/8/8/2ppp3/3P4/8/8/8", 8)
	if got := p.LegalDestinations(idx("d4")).Len(); got != 0 {
		t.Errorf("blocked pawn d4: %d destinations, want 0", got)
	}

	// Double step needs the intermediate square free.
	p = fen.Parse("8/8/8/8/8/4n3/4P3/8", 8)
	if got := p.LegalDestinations(idx("e2")).Len(); got != 0 {
		t.Errorf("pawn e2 behind e3: %d destinations, want 0", got)
	}
	p = fen.Parse("8/8/8/8/4n3/8/4P3/8", 8)
	got := p.LegalDestinations(idx("e2")).Sorted()
	if !reflect.DeepEqual(got, sorted("e3")) {
		t.Errorf("pawn e2 with e4 blocked = %v, want [e3]", got)
	}

	// Off the starting row there is no double step.
	p = fen.Parse("8/8/8/8/8/4P3/8/8", 8)
	if got := p.LegalDestinations(idx("e3")).Sorted(); !reflect.DeepEqual(got, sorted("e4")) {
		t.Errorf("pawn e3 = %v, want [e4]", got)
	}
}

func TestPawnAtFarEdge(t *testing.T) {
	p := fen.Parse("P7/8/8/8/8/8/8/7p", 8)
	if got := p.LegalDestinations(idx("a8")).Len(); got != 0 {
		t.Errorf("white pawn on last rank: %d destinations, want 0", got)
	}
	if got := p.LegalDestinations(idx("h1")).Len(); got != 0 {
		t.Errorf("black pawn on last rank: %d destinations, want 0", got)
	}
}

func TestPawnStartRowScalesWithSize(t *testing.T) {
	// 5x5: white starts on row 3, black on row 1
	p := fen.Parse("5/p4/5/4P/5", 5)
	if got := p.LegalDestinations(19).Sorted(); !reflect.DeepEqual(got, []int{9, 14}) {
		t.Errorf("white pawn on 5x5 = %v, want [9 14]", got)
	}
	if got := p.LegalDestinations(5).Sorted(); !reflect.DeepEqual(got, []int{10, 15}) {
		t.Errorf("black pawn on 5x5 = %v, want [10 15]", got)
	}
}

func TestKingMoves(t *testing.T) {
	cases := []struct {
		text string
		from string
		want int
	}{
		{"K7/8/8/8/8/8/8/8", "a8", 3},
		{"8/8/8/8/8/8/8/7K", "h1", 3},
		{"8/8/8/8/7K/8/8/8", "h4", 5},
		{"8/8/8/8/3K4/8/8/8", "d4", 8},
		{"8/8/8/2PpP3/3K4/8/8/8", "d4", 6},
	}
	for _, c := range cases {
		p := fen.Parse(c.text, 8)
		if got := p.LegalDestinations(idx(c.from)).Len(); got != c.want {
			t.Errorf("king on %s in %s: %d destinations, want %d", c.from, c.text, got, c.want)
		}
	}
}

func TestEmptyAndOutOfRangeSquares(t *testing.T) {
	p := fen.Parse(fen.StartingPosition, 8)
	for _, sq := range []int{-1, 64, 1000, idx("e4")} {
		if got := p.LegalDestinations(sq); got.Len() != 0 {
			t.Errorf("LegalDestinations(%d) = %v, want empty", sq, got.Sorted())
		}
	}
}

func TestSmallBoards(t *testing.T) {
	for _, text := range []string{"Q", "K", "N", "B", "R", "P", "p"} {
		p := fen.Parse(text, 1)
		if got := p.LegalDestinations(0).Len(); got != 0 {
			t.Errorf("%s on 1x1: %d destinations, want 0", text, got)
		}
	}
	p := fen.Parse("Q1/2", 2)
	if got := p.LegalDestinations(0).Sorted(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("queen on 2x2 = %v, want [1 2 3]", got)
	}
}

// Reference positions where no piece of the side to move is pinned and its
// king is not in check, so every pseudo-legal move is also legal.
var referencePositions = []string{
	"4k3/8/8/3R4/8/8/8/4K3 w - - 0 1",
	"4k3/8/2n5/3Q4/8/5p2/8/K7 w - - 0 1",
	"r3k3/8/8/8/3B4/8/1N6/4K3 w - - 0 1",
	"k7/8/1p6/8/3N4/8/5q2/K2R4 w - - 0 1",
	"4k3/8/8/8/8/8/8/4K3 b - - 0 1",
	"4k3/3n4/8/1b6/8/6r1/8/K7 b - - 0 1",
}

func chessIndex(sq chess.Square) int {
	return (7-int(sq.Rank()))*8 + int(sq.File())
}

func TestMatchesReferenceGenerator(t *testing.T) {
	for _, ref := range referencePositions {
		opt, err := chess.FEN(ref)
		if err != nil {
			t.Fatalf("reference FEN %q: %v", ref, err)
		}
		game := chess.NewGame(opt)

		want := make(map[int][]int)
		for _, m := range game.ValidMoves() {
			piece := game.Position().Board().Piece(m.S1())
			if piece.Type() == chess.Pawn || piece.Type() == chess.King {
				continue
			}
			from := chessIndex(m.S1())
			want[from] = append(want[from], chessIndex(m.S2()))
		}

		p := fen.Parse(strings.Fields(ref)[0], 8)
		for from, dests := range want {
			got := p.LegalDestinations(from).Sorted()
			if !reflect.DeepEqual(got, board.NewMoveSet(dests...).Sorted()) {
				t.Errorf("%s: square %s = %v, reference %v", ref, p.SquareName(from), got, board.NewMoveSet(dests...).Sorted())
			}
		}
	}
}
