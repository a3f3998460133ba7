package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/fen"
	"termchess-local/queens"
	"termchess-local/types"
)

// QueensViewerUI lists N-Queens solutions and cycles through them on a timer.
type QueensViewerUI struct {
	flex     *tview.Flex
	list     *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	app      *tview.Application
	cfg      *config.Config
	styles   palette
	n        int
	texts    []string
	boards   []*board.Position
	selected int
	onDone   func()

	mu   sync.Mutex
	stop chan struct{}
}

// NewQueensViewer creates the solution viewer. app may be nil in tests;
// the slideshow then never starts.
func NewQueensViewer(app *tview.Application, cfg *config.Config, onDone func()) *QueensViewerUI {
	qv := &QueensViewerUI{
		app:    app,
		cfg:    cfg,
		styles: newPalette(cfg),
		onDone: onDone,
	}

	qv.list = tview.NewList()
	qv.list.SetBorder(true)
	qv.list.SetTitle(" Solutions ")
	qv.list.ShowSecondaryText(false)
	qv.list.SetHighlightFullLine(true)
	qv.list.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	qv.list.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	qv.preview = tview.NewBox()
	qv.preview.SetBorder(true)
	qv.preview.SetTitle(" Board ")
	qv.preview.SetDrawFunc(qv.drawPreview)

	qv.hint = tview.NewTextView()
	qv.hint.SetDynamicColors(true)
	qv.hint.SetBorder(false)
	qv.hint.SetText("  [dimgray]space[-] play/pause  [dimgray]↑↓[-] browse  [dimgray]q[-] back")

	qv.list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		qv.selected = index
	})
	qv.list.SetInputCapture(qv.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(qv.list, 30, 0, true).
		AddItem(qv.preview, 0, 1, false)

	qv.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(qv.hint, 1, 0, false)

	return qv
}

// Flex returns the flex container for this UI.
func (qv *QueensViewerUI) Flex() *tview.Flex {
	return qv.flex
}

// Load solves n-queens and parses every solution back into a position.
// n is capped by the configured maximum.
func (qv *QueensViewerUI) Load(n int) {
	if n > qv.cfg.Game.MaxQueensSize {
		glog.Warningf("queens: n=%d capped to %d", n, qv.cfg.Game.MaxQueensSize)
		n = qv.cfg.Game.MaxQueensSize
	}
	qv.n = n
	qv.styles = newPalette(qv.cfg)
	qv.texts = queens.FEN(n)
	qv.boards = make([]*board.Position, len(qv.texts))
	for i, text := range qv.texts {
		qv.boards[i] = fen.Parse(text, n)
	}
	qv.selected = 0

	qv.list.Clear()
	if len(qv.texts) == 0 {
		qv.list.AddItem(fmt.Sprintf("[dimgray]No solutions for n=%d[-]", n), "", 0, nil)
	}
	for i := range qv.texts {
		qv.list.AddItem(fmt.Sprintf("%dx%d  #%d", n, n, i+1), "", 0, nil)
	}
	qv.list.SetTitle(fmt.Sprintf(" %d solutions ", len(qv.texts)))
	glog.Infof("queens viewer: n=%d, %d solutions", n, len(qv.texts))
}

// SetConfig switches to cfg and rebuilds the colors from its theme.
func (qv *QueensViewerUI) SetConfig(cfg *config.Config) {
	qv.cfg = cfg
	qv.styles = newPalette(cfg)
}

// Len returns the number of loaded solutions.
func (qv *QueensViewerUI) Len() int {
	return len(qv.boards)
}

// Current returns the shown solution and its board text.
func (qv *QueensViewerUI) Current() (*board.Position, string) {
	if qv.selected < 0 || qv.selected >= len(qv.boards) {
		return nil, ""
	}
	return qv.boards[qv.selected], qv.texts[qv.selected]
}

// Advance shows the next solution, wrapping after the last one.
func (qv *QueensViewerUI) Advance() {
	if len(qv.boards) == 0 {
		return
	}
	qv.selected = (qv.selected + 1) % len(qv.boards)
	qv.list.SetCurrentItem(qv.selected)
}

// Playing reports whether the slideshow is running.
func (qv *QueensViewerUI) Playing() bool {
	qv.mu.Lock()
	defer qv.mu.Unlock()
	return qv.stop != nil
}

// Play starts the slideshow. Each tick only queues a redraw on the
// application goroutine.
func (qv *QueensViewerUI) Play() {
	qv.mu.Lock()
	defer qv.mu.Unlock()
	if qv.stop != nil || qv.app == nil || len(qv.boards) < 2 {
		return
	}
	stop := make(chan struct{})
	qv.stop = stop
	interval := time.Duration(qv.cfg.Game.QueensIntervalMS) * time.Millisecond
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				qv.app.QueueUpdateDraw(qv.Advance)
			}
		}
	}()
}

// Pause stops the slideshow.
func (qv *QueensViewerUI) Pause() {
	qv.mu.Lock()
	defer qv.mu.Unlock()
	if qv.stop != nil {
		close(qv.stop)
		qv.stop = nil
	}
}

func (qv *QueensViewerUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		qv.done()
		return nil
	case tcell.KeyUp, tcell.KeyDown:
		qv.Pause()
		return event
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			qv.done()
			return nil
		case ' ':
			if qv.Playing() {
				qv.Pause()
			} else {
				qv.Play()
			}
			return nil
		}
	}
	return event
}

func (qv *QueensViewerUI) done() {
	qv.Pause()
	if qv.onDone != nil {
		qv.onDone()
	}
}

// drawPreview renders the selected solution and its board text.
func (qv *QueensViewerUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	p, text := qv.Current()
	if p == nil {
		return x, y, width, height
	}
	size := p.Size()
	left, top := x+2, y+1
	if width < size*2+4 || height < size+4 {
		drawText(screen, left, top, "window too small", tcell.StyleDefault.Foreground(MenuColors.Hint))
		return x, y, width, height
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			style := tcell.StyleDefault.Background(qv.styles[squareStyle(col, row, styleLight)])
			r := qv.cfg.Theme.Symbols.Empty
			if piece, ok := p.At(p.Index(col, row)).Piece(); ok {
				r = pieceRune(qv.cfg.Theme, piece)
				fg := qv.styles[stylePieceLight]
				if piece.Side == types.Second {
					fg = qv.styles[stylePieceDark]
				}
				style = style.Foreground(fg).Bold(true)
			}
			drawCell(screen, style, r, left, top, col, row)
		}
	}

	infoY := top + size + 1
	drawText(screen, left, infoY, fmt.Sprintf("#%d of %d", qv.selected+1, len(qv.boards)),
		tcell.StyleDefault.Foreground(MenuColors.Accent))
	drawText(screen, left, infoY+1, text, tcell.StyleDefault.Foreground(MenuColors.Label))

	return x, y, width, height
}
