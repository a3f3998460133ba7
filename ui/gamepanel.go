package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termchess-local/fen"
)

// GameInfoPanel displays position information alongside the board.
type GameInfoPanel struct {
	box   *tview.TextView
	board *ChessBoardUI
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)
	panel.box.SetWrap(true)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoard points the panel at a board and redraws its text.
func (p *GameInfoPanel) SetBoard(b *ChessBoardUI) {
	p.board = b
	p.refresh()
}

// Text returns the panel contents without color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func (p *GameInfoPanel) refresh() {
	if p.board == nil || p.board.Position.Size() == 0 {
		p.box.SetText("")
		return
	}
	b := p.board
	pos := b.Position

	var sb strings.Builder
	sb.WriteString("[white::b]Position[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&sb, "[white]Size:[-:-:-] %dx%d\n", pos.Size(), pos.Size())
	fmt.Fprintf(&sb, "[white]Turn:[-:-:-] %s\n", b.State.Turn)
	strict := "off"
	if b.State.EnforceTurn {
		strict = "on"
	}
	fmt.Fprintf(&sb, "[white]Strict:[-:-:-] %s\n", strict)
	fmt.Fprintf(&sb, "[white]Material:[-:-:-] %+d\n", pos.Material())
	if sq, ok := b.Picked(); ok {
		piece, _ := pos.At(sq).Piece()
		fmt.Fprintf(&sb, "[white]Picked:[-:-:-] %s %s (%d)\n", piece.Kind, pos.SquareName(sq), b.dests.Len())
	}

	sb.WriteString("\n[white::b]Board text[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	sb.WriteString(tview.Escape(fen.EncodePosition(pos)))
	sb.WriteString("\n")

	if from, to, ok := b.LastMove(); ok {
		fmt.Fprintf(&sb, "\n[white]Last:[-:-:-] %c %s-%s\n", b.lastPiece.Rune(), pos.SquareName(from), pos.SquareName(to))
	}

	p.box.SetText(sb.String())
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ChessBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *ChessBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetBoard(board)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *ChessBoardUI) {
	gameFrame.Clear()

	size := board.Position.Size()
	boardWidth := size*2 + labelWidth
	boardHeight := size + 1

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
