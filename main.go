// termchess-local is a terminal chess-board sandbox with an N-Queens viewer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/fen"
	"termchess-local/queens"
	"termchess-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags. glog adds its own (-v, -logtostderr, -log_dir).
var (
	flagFEN      = flag.String("fen", "", "Board text to load (piece placement only)")
	flagSize     = flag.Int("size", 0, "Board size; 0 uses the configured size")
	flagDemo     = flag.Int("demo", 0, "Load built-in position N (1-based)")
	flagQueens   = flag.Int("queens", 0, "Open the N-Queens viewer for an n x n board")
	flagInterval = flag.Duration("interval", 0, "N-Queens slideshow interval, e.g. 250ms")
	flagStrict   = flag.Bool("strict", false, "Only the side to move may move")
	flagPrint    = flag.Bool("print", false, "Print the board and exit without starting the UI")
	flagFocus    = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.ChessBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()
	defer glog.Flush()

	if *flagVersion {
		fmt.Printf("termchess-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		glog.Exitf("%v", err)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *flagPrint {
		if *flagQueens > 0 {
			printQueens(os.Stdout, *flagQueens, cfg.Game.MaxQueensSize)
			return
		}
		printPosition(os.Stdout, fen.Parse(cfg.Game.StartFEN, cfg.Game.BoardSize))
		return
	}

	app = tview.NewApplication().EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ♞ termchess ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewChessBoard(cfg, gameHint)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			if _, picked := gameBoard.Picked(); picked || gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			gameBoard.Activate()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case ' ':
				gameBoard.Activate()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	queensView := ui.NewQueensViewer(app, cfg, func() {
		rootPage.SwitchToPage("setup")
	})

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		queensView.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	setupUI := ui.NewGameSetup(cfg,
		func(choice ui.GameChoice) {
			startGame(choice.Text, choice.Size, choice.Strict)
		},
		func(n int) {
			startQueens(queensView, n)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	quickStart := *flagFEN != "" || *flagDemo > 0 || *flagSize > 0 || *flagStrict || *flagFocus
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 72), true, true)
	rootPage.AddPage("gameview", gameFrame, true, false)
	rootPage.AddPage("queens", queensView.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	switch {
	case *flagQueens > 0:
		startQueens(queensView, *flagQueens)
	case quickStart:
		startGame(cfg.Game.StartFEN, cfg.Game.BoardSize, cfg.Game.EnforceTurn)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	glog.Infof("termchess-local %s starting", Version)
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		glog.Exitf("ui: %v", err)
	}
}

// applyFlags layers command-line flags over the loaded configuration.
func applyFlags(c *config.Config) error {
	if *flagDemo > 0 {
		if *flagDemo > len(fen.Demos) {
			return fmt.Errorf("-demo must be between 1 and %d", len(fen.Demos))
		}
		c.Game.StartFEN = fen.Demos[*flagDemo-1].Text
	}
	if *flagFEN != "" {
		c.Game.StartFEN = *flagFEN
	}
	if *flagSize > 0 {
		c.Game.BoardSize = *flagSize
	}
	if *flagStrict {
		c.Game.EnforceTurn = true
	}
	if *flagInterval > 0 {
		c.Game.QueensIntervalMS = int(*flagInterval / time.Millisecond)
	}
	return c.Validate()
}

func startGame(text string, size int, strict bool) {
	gameBoard.LoadPosition(text, size)
	gameBoard.SetEnforceTurn(strict)
	rootPage.SwitchToPage("gameview")
}

func startQueens(view *ui.QueensViewerUI, n int) {
	view.Load(n)
	rootPage.SwitchToPage("queens")
	view.Play()
}

// printPosition writes the board followed by each piece's destination count.
func printPosition(w io.Writer, p *board.Position) {
	fmt.Fprint(w, p.String())
	fmt.Fprintf(w, "material %+d\n", p.Material())
	for sq := 0; sq < p.Size()*p.Size(); sq++ {
		piece, ok := p.At(sq).Piece()
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%c %s: %d\n", piece.Rune(), p.SquareName(sq), p.LegalDestinations(sq).Len())
	}
}

// printQueens writes every n-queens solution as board text, one per line.
// n is capped at limit.
func printQueens(w io.Writer, n, limit int) {
	if n > limit {
		glog.Warningf("queens: n=%d capped to %d", n, limit)
		n = limit
	}
	texts := queens.FEN(n)
	for _, text := range texts {
		fmt.Fprintln(w, text)
	}
	fmt.Fprintf(w, "%d solutions\n", len(texts))
}
