package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup form and the queens viewer.
var MenuColors = struct {
	Label       tcell.Color
	Hint        tcell.Color
	Accent      tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Label:       tcell.PaletteColor(250), // light gray
	Hint:        tcell.PaletteColor(245), // dim gray
	Accent:      tcell.PaletteColor(179), // wheat
	ButtonBG:    tcell.PaletteColor(94),  // brown
	ButtonFocus: tcell.PaletteColor(172), // orange
	ButtonText:  tcell.PaletteColor(255), // white
}
