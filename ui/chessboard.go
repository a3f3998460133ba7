// Package ui specifies custom controls for tview to explore chess positions in the terminal.
package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/fen"
	"termchess-local/types"
)

// labelWidth is the number of columns left of the board for rank numbers.
const labelWidth = 3

// Tile is a cursor location on the board.
type Tile struct {
	Col, Row int
}

type ChessBoardUI struct {
	Box         *tview.Box
	Position    *board.Position
	State       *types.GameState
	hint        *tview.TextView
	cfg         *config.Config
	styles      palette
	infoPanel   *GameInfoPanel
	focusMode   bool
	selX        int
	selY        int
	picked      int
	dests       board.MoveSet
	lastFrom    int
	lastTo      int
	lastPiece   types.Piece
	status      string
	// screen cell of square (0, 0), updated on every draw
	originX int
	originY int
}

func NewChessBoard(c *config.Config, hint *tview.TextView) *ChessBoardUI {
	cb := &ChessBoardUI{
		Box:      tview.NewBox(),
		Position: board.New(0, nil),
		State:    types.NewGameState(c.Game.EnforceTurn),
		hint:     hint,
		selX:     -1,
		selY:     -1,
		picked:   -1,
		lastFrom: -1,
		lastTo:   -1,
	}
	cb.SetConfig(c)
	cb.Box.SetDrawFunc(cb.draw)
	cb.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		mx, my := event.Position()
		if sq, ok := cb.SquareAt(mx, my); ok {
			col, row := cb.Position.Coords(sq)
			cb.selX, cb.selY = col, row
			cb.Select(sq)
		}
		return action, event
	})
	return cb
}

// LoadPosition parses text onto a size x size board and starts a fresh game.
func (g *ChessBoardUI) LoadPosition(text string, size int) {
	g.Position = fen.Parse(text, size)
	g.State = types.NewGameState(g.cfg.Game.EnforceTurn)
	g.lastFrom, g.lastTo = -1, -1
	g.status = ""
	g.clearPick()
	g.ResetSelection()
	glog.Infof("loaded %dx%d position %q", size, size, text)
	g.refreshHint()
}

// SetEnforceTurn toggles the turn-ownership check for the current game.
func (g *ChessBoardUI) SetEnforceTurn(enforce bool) {
	g.State.EnforceTurn = enforce
	g.refreshHint()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ChessBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ChessBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *ChessBoardUI) SelectedTile() *Tile {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &Tile{Col: g.selX, Row: g.selY}
}

// Picked returns the square whose destinations are shown, if any.
func (g *ChessBoardUI) Picked() (int, bool) {
	return g.picked, g.picked >= 0
}

// Destinations returns the highlighted destination set.
func (g *ChessBoardUI) Destinations() board.MoveSet {
	return g.dests
}

// LastMove returns the squares of the most recent move, if any.
func (g *ChessBoardUI) LastMove() (from, to int, ok bool) {
	return g.lastFrom, g.lastTo, g.lastTo >= 0
}

func (g *ChessBoardUI) MoveSelection(h, v int) {
	size := g.Position.Size()
	if size == 0 {
		return
	}
	if g.SelectedTile() == nil {
		if g.lastTo >= 0 {
			g.selX, g.selY = g.Position.Coords(g.lastTo)
		} else {
			g.selX, g.selY = size/2, size/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

// ResetSelection drops the picked piece, or the cursor when nothing is picked.
func (g *ChessBoardUI) ResetSelection() {
	if g.picked >= 0 {
		g.clearPick()
		g.refreshHint()
		return
	}
	g.selX = -1
	g.selY = -1
}

// Activate acts on the square under the cursor.
func (g *ChessBoardUI) Activate() bool {
	t := g.SelectedTile()
	if t == nil {
		return false
	}
	return g.Select(g.Position.Index(t.Col, t.Row))
}

// Select runs one step of the pick-then-move flow and reports whether a
// move was applied. Picking an occupied square shows its destinations.
// Selecting one of them moves the piece. Selecting the picked square again
// drops it, and any other occupied square is picked instead.
func (g *ChessBoardUI) Select(sq int) bool {
	size := g.Position.Size()
	if sq < 0 || sq >= size*size {
		return false
	}
	if g.picked >= 0 {
		from := g.picked
		if sq == from {
			g.clearPick()
			g.refreshHint()
			return false
		}
		if g.dests.Contains(sq) {
			moved := g.applyMove(from, sq)
			g.clearPick()
			g.refreshHint()
			return moved
		}
	}
	if g.Position.At(sq).IsEmpty() {
		g.clearPick()
		g.refreshHint()
		return false
	}
	g.picked = sq
	g.dests = g.Position.LegalDestinations(sq)
	g.status = ""
	glog.V(1).Infof("picked %s: %d destinations", g.Position.SquareName(sq), g.dests.Len())
	g.refreshHint()
	return false
}

func (g *ChessBoardUI) applyMove(from, to int) bool {
	piece, _ := g.Position.At(from).Piece()
	if !g.Position.ApplyMove(from, to, g.dests, g.State) {
		g.status = fmt.Sprintf("%s to move", g.State.Turn)
		glog.Warningf("rejected %s %s-%s: %s to move", piece.Kind,
			g.Position.SquareName(from), g.Position.SquareName(to), g.State.Turn)
		return false
	}
	g.lastFrom, g.lastTo, g.lastPiece = from, to, piece
	g.status = ""
	glog.V(1).Infof("move: %s %s-%s", piece.Kind,
		g.Position.SquareName(from), g.Position.SquareName(to))
	return true
}

func (g *ChessBoardUI) clearPick() {
	g.picked = -1
	g.dests = nil
}

// SquareAt maps a screen cell to a square index using the last drawn layout.
func (g *ChessBoardUI) SquareAt(x, y int) (int, bool) {
	size := g.Position.Size()
	if size == 0 || x < g.originX || y < g.originY {
		return -1, false
	}
	col, row := (x-g.originX)/2, y-g.originY
	if col >= size || row >= size {
		return -1, false
	}
	return g.Position.Index(col, row), true
}

func (g *ChessBoardUI) SetConfig(c *config.Config) {
	g.styles = newPalette(c)
	g.cfg = c
}

func (g *ChessBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := g.Position.Size()
	if size == 0 {
		return x, y, 1, 1
	}
	g.originX, g.originY = x+labelWidth, y
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sq := g.Position.Index(col, row)
			base := styleLight
			switch {
			case g.dests.Contains(sq):
				base = styleDestLight
			case sq == g.lastFrom || sq == g.lastTo:
				base = styleLastLight
			}
			bg := g.styles[squareStyle(col, row, base)]
			if (col == g.selX && row == g.selY) || sq == g.picked {
				bg = g.styles[styleCursor]
			}
			style := tcell.StyleDefault.Background(bg)
			r := g.cfg.Theme.Symbols.Empty
			if piece, ok := g.Position.At(sq).Piece(); ok {
				fg := g.styles[stylePieceLight]
				if piece.Side == types.Second {
					fg = g.styles[stylePieceDark]
				}
				style = style.Foreground(fg).Bold(true)
				r = pieceRune(g.cfg.Theme, piece)
			}
			drawCell(screen, style, r, g.originX, g.originY, col, row)
		}
	}
	g.drawCoordinates(screen, x, y)
	return x, y, size*2 + labelWidth, size + 1
}

func (g *ChessBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	size := g.Position.Size()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[styleCursor])

	for col := 0; col < size; col++ {
		st := style
		if col == g.selX {
			st = highlight
		}
		s.SetContent(g.originX+col*2, y+size, fileLabel(col), nil, st)
		s.SetContent(g.originX+col*2+1, y+size, ' ', nil, st)
	}
	for row := 0; row < size; row++ {
		st := style
		if row == g.selY {
			st = highlight
		}
		drawText(s, x, y+row, padLeft(strconv.Itoa(size-row), labelWidth-1), st)
	}
}

func (g *ChessBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoard(g)
	}
	if g.hint == nil {
		return
	}
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	statusLine := fmt.Sprintf("  %s to move", g.State.Turn)
	if g.status != "" {
		statusLine = "  ! " + g.status
	} else if sq, ok := g.Picked(); ok {
		statusLine = fmt.Sprintf("  %s selected, %d destinations", g.Position.SquareName(sq), g.dests.Len())
	}
	controlsLine := "\n  hjkl/↑↓←→ move   ⏎ select   f focus   q back"
	g.hint.SetText(statusLine + controlsLine)
}
