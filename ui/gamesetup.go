package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/config"
	"termchess-local/fen"
)

// GameChoice is what the setup form starts a game with.
type GameChoice struct {
	Text   string
	Size   int
	Strict bool
}

// GameSetupUI provides a form for picking a position or the N-Queens viewer.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(GameChoice)
	onQueens func(n int)
	onCancel func()
	onColors func()

	choice     GameChoice
	queensSize int
}

// NewGameSetup creates a new game setup form seeded from cfg.
func NewGameSetup(cfg *config.Config, onStart func(GameChoice), onQueens func(int), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onQueens: onQueens,
		onCancel: onCancel,
		onColors: onColors,
		choice: GameChoice{
			Text:   cfg.Game.StartFEN,
			Size:   cfg.Game.BoardSize,
			Strict: cfg.Game.EnforceTurn,
		},
		queensSize: 8,
	}
	if setup.queensSize > cfg.Game.MaxQueensSize {
		setup.queensSize = cfg.Game.MaxQueensSize
	}

	form := tview.NewForm()

	names := make([]string, len(fen.Demos))
	for i, d := range fen.Demos {
		names[i] = d.Name
	}
	textField := tview.NewInputField().
		SetLabel("Board text").
		SetText(setup.choice.Text).
		SetFieldWidth(48).
		SetChangedFunc(func(text string) {
			setup.choice.Text = strings.TrimSpace(text)
		})

	form.AddDropDown("Position", names, -1, func(option string, index int) {
		if index < 0 || index >= len(fen.Demos) {
			return
		}
		setup.choice.Text = fen.Demos[index].Text
		setup.choice.Size = 8
		textField.SetText(setup.choice.Text)
		if item := form.GetFormItemByLabel("Size"); item != nil {
			item.(*tview.InputField).SetText("8")
		}
	})
	form.AddFormItem(textField)

	form.AddInputField("Size", strconv.Itoa(setup.choice.Size), 4, tview.InputFieldInteger, func(text string) {
		if val, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && val > 0 {
			if val > config.MaxBoardSize {
				val = config.MaxBoardSize
			}
			setup.choice.Size = val
		}
	})

	form.AddCheckbox("Strict turns", setup.choice.Strict, func(checked bool) {
		setup.choice.Strict = checked
	})

	form.AddInputField("Queens", strconv.Itoa(setup.queensSize), 4, tview.InputFieldInteger, func(text string) {
		if val, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && val > 0 {
			if val > cfg.Game.MaxQueensSize {
				val = cfg.Game.MaxQueensSize
			}
			setup.queensSize = val
		}
	})

	form.AddButton("Start", func() {
		onStart(setup.choice)
	})

	form.AddButton("N-Queens", func() {
		if onQueens != nil {
			onQueens(setup.queensSize)
		}
	})

	form.AddButton("Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Board ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Choice returns the current form values.
func (s *GameSetupUI) Choice() GameChoice {
	return s.choice
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
