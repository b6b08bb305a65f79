package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"omok-local/types"
)

var (
	cfgFile = "omok-local/config.json"
)

// MaxAIDelayMs caps the pause before the computer's stone is shown.
const MaxAIDelayMs = 5000

// Languages the UI has messages for.
var Languages = []string{"en", "ko"}

// PlayerColors are the accepted player_color values, Black first.
var PlayerColors = []string{"black", "white"}

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinningLineBG     int `json:"winning_line_bg"`
	HintColorBG       int `json:"hint_bg"`
}

type ConfigSymbols struct {
	BlackStone rune `json:"black"`
	WhiteStone rune `json:"white"`
	StarPoint  rune `json:"star_point"`
	Cursor     rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults for a new game.
type GameConfig struct {
	Difficulty  types.Difficulty `json:"difficulty"`
	PlayerColor string           `json:"player_color"`
	AIDelayMs   int              `json:"ai_delay_ms"`
	Language    string           `json:"language"`
}

// Stone returns the configured human colour.
func (g GameConfig) Stone() types.Stone {
	if g.PlayerColor == "white" {
		return types.White
	}
	return types.Black
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

// InitConfig loads the user's config file over the defaults.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		// no config file yet
		absPath = ""
	}
	return Load(absPath)
}

// Load reads filePath over the defaults and validates the result. An
// empty path or a missing file yields the defaults.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if filePath != "" {
		if err := readCfgFile(filePath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.StarPoint, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if !c.Game.Difficulty.Valid() {
		return &InvalidConfig{fmt.Sprintf("unknown difficulty %d", c.Game.Difficulty)}
	}
	if !contains(PlayerColors, c.Game.PlayerColor) {
		return &InvalidConfig{fmt.Sprintf("player_color must be black or white, got %q", c.Game.PlayerColor)}
	}
	if c.Game.AIDelayMs < 0 || c.Game.AIDelayMs > MaxAIDelayMs {
		return &InvalidConfig{fmt.Sprintf("ai_delay_ms must be between 0 and %d", MaxAIDelayMs)}
	}
	if !contains(Languages, c.Game.Language) {
		return &InvalidConfig{fmt.Sprintf("unsupported language %q", c.Game.Language)}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return c.SaveTo(absPath)
}

// SaveTo writes the config to filePath.
func (c *Config) SaveTo(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return saveCfgFile(filePath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err = json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
