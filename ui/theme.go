package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"termchess-local/config"
	"termchess-local/types"
)

// Indexes into palette.
const (
	styleLight = iota
	styleDark
	styleDestLight
	styleDestDark
	styleLastLight
	styleLastDark
	styleCursor
	stylePieceLight
	stylePieceDark
)

// destBlend is how far a highlight pulls the square color toward the
// highlight color. The checkerboard stays visible underneath.
const destBlend = 0.65

type palette []tcell.Color

func newPalette(c *config.Config) palette {
	cols := c.Theme.Colors
	light := hexColor(cols.LightSquare)
	dark := hexColor(cols.DarkSquare)
	dest := hexColor(cols.Destination)
	last := hexColor(cols.LastMove)
	return palette{
		toTcell(light),                          // 0
		toTcell(dark),                           // 1
		toTcell(light.BlendLab(dest, destBlend)), // 2
		toTcell(dark.BlendLab(dest, destBlend)),  // 3
		toTcell(light.BlendLab(last, destBlend)), // 4
		toTcell(dark.BlendLab(last, destBlend)),  // 5
		toTcell(hexColor(cols.Cursor)),           // 6
		toTcell(hexColor(cols.LightPiece)),       // 7
		toTcell(hexColor(cols.DarkPiece)),        // 8
	}
}

// hexColor parses a validated "#rrggbb" string. Invalid strings fall back
// to mid gray.
func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// squareStyle returns the background index for a square, picking the
// light or dark variant of the given highlight.
func squareStyle(col, row, base int) int {
	if (col+row)%2 == 1 {
		return base + 1
	}
	return base
}

// pieceRune returns the rune drawn for a piece under the given theme.
func pieceRune(t config.Theme, p types.Piece) rune {
	if !t.UseLetters {
		set := t.Symbols.Light
		if p.Side == types.Second {
			set = t.Symbols.Dark
		}
		if sym, ok := set[string(p.Kind.Letter())]; ok && sym != "" {
			return []rune(sym)[0]
		}
	}
	return p.Rune()
}

// drawCell draws a 2-column cell. Wide glyphs fill both columns, narrow
// ones get a padding space.
func drawCell(s tcell.Screen, style tcell.Style, r rune, left, top, col, row int) {
	x := left + col*2
	s.SetContent(x, top+row, r, nil, style)
	if runewidth.RuneWidth(r) < 2 {
		s.SetContent(x+1, top+row, ' ', nil, style)
	}
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// fileLabel returns the file letters used under the board.
func fileLabel(col int) rune {
	return rune('a' + col)
}

func padLeft(s string, n int) string {
	if w := runewidth.StringWidth(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}
