package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"

	"termchess-local/config"
	"termchess-local/fen"
	"termchess-local/types"
)

// ColorConfigUI lets the user pick square and highlight colors with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// working copy shown in the preview until confirmed
	draft          config.Config
	editHighlights bool
}

type squarePair struct {
	name        string
	light, dark string
}

var squarePairs = []squarePair{
	{"Walnut", "#f0d9bf", "#a87863"},
	{"Tournament", "#eeeed2", "#769656"},
	{"Ice", "#dee3e6", "#8ca2ad"},
	{"Sand", "#f5e6c4", "#c9a26b"},
	{"Slate", "#b8b8b8", "#6d6d6d"},
	{"Rose", "#f2dcdc", "#b07a7a"},
}

type highlightPair struct {
	name           string
	dest, lastMove string
}

var highlightPairs = []highlightPair{
	{"Orange / Yellow", "#ffa31a", "#d4b552"},
	{"Green / Teal", "#5fd75f", "#5fafaf"},
	{"Blue / Violet", "#5f87ff", "#af87d7"},
	{"Red / Amber", "#e05050", "#e0b050"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
		draft:  *cfg,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.applyDraft(index)
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.applyDraft(index)
		cc.cfg.Theme.Colors = cc.draft.Theme.Colors
		if err := cc.cfg.Save(); err != nil {
			glog.Errorf("save theme: %v", err)
		}
		if cc.editHighlights {
			cc.editHighlights = false
			cc.populateColorList()
			return
		}
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// applyDraft copies list entry index into the draft colors.
func (cc *ColorConfigUI) applyDraft(index int) {
	if cc.editHighlights {
		if index >= 0 && index < len(highlightPairs) {
			cc.draft.Theme.Colors.Destination = highlightPairs[index].dest
			cc.draft.Theme.Colors.LastMove = highlightPairs[index].lastMove
		}
		return
	}
	if index >= 0 && index < len(squarePairs) {
		cc.draft.Theme.Colors.LightSquare = squarePairs[index].light
		cc.draft.Theme.Colors.DarkSquare = squarePairs[index].dark
	}
}

func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editHighlights {
		cc.colorList.SetTitle(" Highlights (Tab: squares) ")
		for i, h := range highlightPairs {
			cc.colorList.AddItem(fmt.Sprintf("[%s]██[%s]██[-] %s", h.dest, h.lastMove, h.name), "", rune('a'+i), nil)
		}
		for i, h := range highlightPairs {
			if h.dest == cc.draft.Theme.Colors.Destination {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
		return
	}
	cc.colorList.SetTitle(" Squares (Tab: highlights) ")
	for i, s := range squarePairs {
		cc.colorList.AddItem(fmt.Sprintf("[%s]██[%s]██[-] %s", s.light, s.dark, s.name), "", rune('a'+i), nil)
	}
	for i, s := range squarePairs {
		if s.light == cc.draft.Theme.Colors.LightSquare {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// previewPosition is a small corner of a game with a knight picked.
const previewPosition = "r1bqk/ppppp/2n2/5/2N2/PPPPP/R1BQK"

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 7
	if width < size*2+4 || height < size+4 {
		return x, y, width, height
	}
	styles := newPalette(&cc.draft)
	p := fen.Parse(previewPosition, size)
	picked := p.Index(2, 4)
	dests := p.LegalDestinations(picked)
	left, top := x+2, y+1

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sq := p.Index(col, row)
			base := styleLight
			switch {
			case dests.Contains(sq):
				base = styleDestLight
			case sq == p.Index(2, 2):
				base = styleLastLight
			}
			style := tcell.StyleDefault.Background(styles[squareStyle(col, row, base)])
			if sq == picked {
				style = style.Background(styles[styleCursor])
			}
			r := cc.draft.Theme.Symbols.Empty
			if piece, ok := p.At(sq).Piece(); ok {
				fg := styles[stylePieceLight]
				if piece.Side == types.Second {
					fg = styles[stylePieceDark]
				}
				style = style.Foreground(fg).Bold(true)
				r = pieceRune(cc.draft.Theme, piece)
			}
			drawCell(screen, style, r, left, top, col, row)
		}
	}

	info := fmt.Sprintf("%s / %s", cc.draft.Theme.Colors.LightSquare, cc.draft.Theme.Colors.DarkSquare)
	drawText(screen, left, top+size+1, info, tcell.StyleDefault.Foreground(MenuColors.Label))
	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between square and highlight editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editHighlights = !cc.editHighlights
	cc.populateColorList()
}

// Draft returns the colors currently previewed.
func (cc *ColorConfigUI) Draft() config.ConfigColors {
	return cc.draft.Theme.Colors
}
