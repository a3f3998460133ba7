package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/kelseyhightower/envconfig"
	colorful "github.com/lucasb-eyer/go-colorful"

	"termchess-local/types"
)

var (
	cfgFile   = "termchess-local/config.json"
	envPrefix = "termchess"
)

// MaxBoardSize is the largest board with a file letter for every column.
const MaxBoardSize = 26

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds board colors as "#rrggbb" strings.
type ConfigColors struct {
	LightSquare string `json:"light_square"`
	DarkSquare  string `json:"dark_square"`
	LightPiece  string `json:"light_piece"`
	DarkPiece   string `json:"dark_piece"`
	Destination string `json:"destination"`
	LastMove    string `json:"last_move"`
	Cursor      string `json:"cursor"`
}

// ConfigSymbols maps piece letters (pnbrqk) to the runes drawn for them.
type ConfigSymbols struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
	Empty rune              `json:"empty"`
}

type Theme struct {
	UseLetters bool          `json:"use_letters"`
	Colors     ConfigColors  `json:"colors"`
	Symbols    ConfigSymbols `json:"symbols"`
}

// GameConfig holds board and solver settings. Every field can be
// overridden from the environment with a TERMCHESS_ prefix.
type GameConfig struct {
	BoardSize        int    `json:"board_size" envconfig:"BOARD_SIZE"`
	StartFEN         string `json:"start_fen" envconfig:"START_FEN"`
	EnforceTurn      bool   `json:"enforce_turn" envconfig:"ENFORCE_TURN"`
	QueensIntervalMS int    `json:"queens_interval_ms" envconfig:"QUEENS_INTERVAL_MS"`
	MaxQueensSize    int    `json:"max_queens_size" envconfig:"MAX_QUEENS_SIZE"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig.clone()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyEnv overrides game settings from TERMCHESS_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(envPrefix, &c.Game); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Game.BoardSize < 1 || c.Game.BoardSize > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board_size must be between 1 and %d, got %d", MaxBoardSize, c.Game.BoardSize)}
	}
	if c.Game.QueensIntervalMS < 10 {
		return &InvalidConfig{"queens_interval_ms must be at least 10"}
	}
	if c.Game.MaxQueensSize < 1 {
		return &InvalidConfig{"max_queens_size must be positive"}
	}
	colors := map[string]string{
		"light_square": c.Theme.Colors.LightSquare,
		"dark_square":  c.Theme.Colors.DarkSquare,
		"light_piece":  c.Theme.Colors.LightPiece,
		"dark_piece":   c.Theme.Colors.DarkPiece,
		"destination":  c.Theme.Colors.Destination,
		"last_move":    c.Theme.Colors.LastMove,
		"cursor":       c.Theme.Colors.Cursor,
	}
	for name, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			return &InvalidConfig{fmt.Sprintf("color %s: %q is not #rrggbb", name, hex)}
		}
	}
	for _, set := range []map[string]string{c.Theme.Symbols.Light, c.Theme.Symbols.Dark} {
		for letter, sym := range set {
			if !knownLetter(letter) {
				return &InvalidConfig{fmt.Sprintf("symbol key %q is not one of pnbrqk", letter)}
			}
			for _, r := range sym {
				if r < 32 || (r >= 127 && r <= 159) {
					return &InvalidConfig{fmt.Sprintf("symbol for %q: Unicode characters 1-31 and 127-159 are not allowed", letter)}
				}
			}
		}
	}
	return nil
}

func knownLetter(letter string) bool {
	for _, k := range types.AllKinds {
		if letter == string(k.Letter()) {
			return true
		}
	}
	return false
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// clone copies c, including the symbol maps, so edits never reach the
// package defaults.
func (c Config) clone() Config {
	c.Theme.Symbols.Light = copyMap(c.Theme.Symbols.Light)
	c.Theme.Symbols.Dark = copyMap(c.Theme.Symbols.Dark)
	return c
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
