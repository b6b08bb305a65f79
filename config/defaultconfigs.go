package config

import "omok-local/types"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		UseGridLines:             true,
		Colors: ConfigColors{
			BoardColor:        180,
			BoardColorAlt:     180,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         94,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
			WinningLineBG:     1,
			HintColorBG:       3,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '●',
			StarPoint:  '╋',
			Cursor:     '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Difficulty:  types.Normal,
			PlayerColor: "black",
			AIDelayMs:   500,
			Language:    "en",
		},
	}
}
