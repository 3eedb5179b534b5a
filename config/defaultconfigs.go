package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		UseGridLines:             true,
		Colors: ConfigColors{
			BoardColor:        180,
			BlackColor:        232,
			WhiteColor:        255,
			LineColor:         94,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
			KoColorBG:         1,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '●',
			Cursor:     '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultBoardSize: 19,
			ASCIIBoard:       false,
		},
	}
}
