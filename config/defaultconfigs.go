package config

import "termchess-local/fen"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		UseLetters: false,
		Colors: ConfigColors{
			LightSquare: "#f0d9bf",
			DarkSquare:  "#a87863",
			LightPiece:  "#ffffff",
			DarkPiece:   "#1c1c1c",
			Destination: "#ffa31a",
			LastMove:    "#d4b552",
			Cursor:      "#5f87af",
		},
		Symbols: ConfigSymbols{
			Light: map[string]string{
				"p": "♙", "n": "♘", "b": "♗", "r": "♖", "q": "♕", "k": "♔",
			},
			Dark: map[string]string{
				"p": "♟", "n": "♞", "b": "♝", "r": "♜", "q": "♛", "k": "♚",
			},
			Empty: ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			BoardSize:        8,
			StartFEN:         fen.StartingPosition,
			EnforceTurn:      false,
			QueensIntervalMS: 250,
			MaxQueensSize:    10,
		},
	}
}
