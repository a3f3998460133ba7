package fen

import (
	"testing"
)

func TestEncode(t *testing.T) {
	grid := [][]bool{
		{false, true, false, false},
		{false, false, false, true},
		{true, false, false, false},
		{false, false, true, false},
	}
	got := Encode(grid, 'Q')
	want := "1Q2/3Q/Q3/2Q1/"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeEmptyRows(t *testing.T) {
	grid := [][]bool{
		{false, false, false},
		{false, false, false},
	}
	if got := Encode(grid, 'Q'); got != "3/3/" {
		t.Errorf("Encode = %q, want %q", got, "3/3/")
	}
	if got := Encode(nil, 'Q'); got != "" {
		t.Errorf("Encode(nil) = %q, want empty", got)
	}
}

func TestEncodeLongRun(t *testing.T) {
	row := make([]bool, 12)
	row[11] = true
	got := Encode([][]bool{row}, 'Q')
	if got != "11Q/" {
		t.Errorf("Encode = %q, want %q", got, "11Q/")
	}
}

func TestEncodePositionRoundTrip(t *testing.T) {
	for _, d := range Demos {
		p := Parse(d.Text, 8)
		text := EncodePosition(p)
		again := Parse(text, 8)
		if again.String() != p.String() {
			t.Errorf("%s: round trip through %q changed the board:\n%s\nvs\n%s", d.Name, text, p, again)
		}
	}
}

func TestEncodePositionStartingPosition(t *testing.T) {
	if got := EncodePosition(Parse(StartingPosition, 8)); got != StartingPosition {
		t.Errorf("EncodePosition = %q, want %q", got, StartingPosition)
	}
	if got := EncodePosition(Parse("///////", 8)); got != "8/8/8/8/8/8/8/8" {
		t.Errorf("EncodePosition(empty) = %q", got)
	}
}

func TestDemos(t *testing.T) {
	if Demos[0].Text != StartingPosition {
		t.Errorf("first demo = %q, want starting position", Demos[0].Text)
	}
	for _, d := range Demos {
		if d.Name == "" {
			t.Errorf("demo %q has no name", d.Text)
		}
		if n := len(Parse(d.Text, 8).Squares()); n != 64 {
			t.Errorf("%s: %d squares, want 64", d.Name, n)
		}
	}
}
