// Package ui implements the interactive terminal board for playing a
// stored game with tview.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"corrgo/board"
	"corrgo/config"
	"corrgo/render"
)

// GoBoardUI renders a board.Board as a tview widget and applies moves
// to it. Every successful mutation triggers the OnChange hook so the
// owning command can persist the game.
type GoBoardUI struct {
	Box      *tview.Box
	OnChange func()

	board     *board.Board
	hint      *tview.TextView
	cfg       *config.Config
	app       *tview.Application
	selX      int
	selY      int
	message   string
	infoPanel *GameInfoPanel

	lineStyle   tcell.Style
	blackStyle  tcell.Style
	whiteStyle  tcell.Style
	cursorBG    tcell.Color
	lastMoveBG  tcell.Color
	koBG        tcell.Color
	drawCursor  bool
	drawLastBG  bool
	useGridRune bool
}

// NewGoBoard creates the widget for a board.
func NewGoBoard(app *tview.Application, c *config.Config, hint *tview.TextView, b *board.Board) *GoBoardUI {
	g := &GoBoardUI{
		Box:   tview.NewBox(),
		board: b,
		hint:  hint,
		app:   app,
		selX:  -1,
		selY:  -1,
	}
	g.SetConfig(c)
	g.Box.SetDrawFunc(g.draw)
	g.refreshHint()
	return g
}

// Board returns the board being played.
func (g *GoBoardUI) Board() *board.Board {
	return g.board
}

// SetConfig applies theme colors and symbols.
func (g *GoBoardUI) SetConfig(c *config.Config) {
	g.cfg = c
	g.lineStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.LineColor))
	g.blackStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.BlackColor))
	g.whiteStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.WhiteColor))
	g.cursorBG = tcell.PaletteColor(c.Theme.Colors.CursorColorBG)
	g.lastMoveBG = tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG)
	g.koBG = tcell.PaletteColor(c.Theme.Colors.KoColorBG)
	g.drawCursor = c.Theme.DrawCursorBackground
	g.drawLastBG = c.Theme.DrawLastPlayedBackground
	g.useGridRune = c.Theme.UseGridLines
}

// SelectedTile returns the cursor position, or nil if none is selected.
func (g *GoBoardUI) SelectedTile() *board.Point {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &board.Point{X: g.selX, Y: g.selY}
}

// MoveSelection moves the cursor by (h, v) in board coordinates, where
// v > 0 moves towards the higher-numbered rows (up the screen).
func (g *GoBoardUI) MoveSelection(h, v int) {
	if g.SelectedTile() == nil {
		// Start from the last played stone, or the board center.
		g.selX, g.selY = g.lastMovePoint()
		if g.SelectedTile() == nil {
			g.selX = g.board.Size() / 2
			g.selY = g.board.Size() / 2
		}
		return
	}
	nx, ny := g.selX+h, g.selY+v
	if nx < 0 || nx >= g.board.Size() || ny < 0 || ny >= g.board.Size() {
		return
	}
	g.selX, g.selY = nx, ny
}

// ResetSelection hides the cursor.
func (g *GoBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

// PlayMove plays the side to move at the cursor. Illegal moves leave
// the board untouched and surface the engine's reason in the hint bar.
func (g *GoBoardUI) PlayMove() {
	sel := g.SelectedTile()
	if sel == nil {
		return
	}
	color := g.board.NextColor()
	if ok, reason := g.board.Place(sel.X, sel.Y, color); !ok {
		g.message = fmt.Sprintf("Illegal move %s: %s", board.HumanCoord(sel.X, sel.Y), reason)
		g.refreshHint()
		return
	}
	g.message = fmt.Sprintf("%s played %s", color, board.HumanCoord(sel.X, sel.Y))
	g.changed()
}

// Pass records a pass for the side to move.
func (g *GoBoardUI) Pass() {
	color := g.board.NextColor()
	g.board.Pass(color)
	g.message = fmt.Sprintf("%s passes", color)
	g.changed()
}

// Undo rewinds the last move by history replay.
func (g *GoBoardUI) Undo() {
	if !g.board.UndoLast() {
		g.message = "Nothing to undo"
		g.refreshHint()
		return
	}
	g.message = "Undid last move"
	g.changed()
}

func (g *GoBoardUI) changed() {
	if g.OnChange != nil {
		g.OnChange()
	}
	g.refreshHint()
}

// lastMovePoint returns the coordinates of the most recent non-pass
// move, or (-1, -1).
func (g *GoBoardUI) lastMovePoint() (int, int) {
	history := g.board.History()
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].IsPass() {
			return history[i].X, history[i].Y
		}
	}
	return -1, -1
}

func (g *GoBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.Refresh()
	}

	statusLine := ""
	if g.message != "" {
		statusLine = fmt.Sprintf("  %s\n", g.message)
	}

	stone, color := "●", "Black"
	if g.board.NextColor() == board.White {
		stone, color = "○", "White"
	}
	turnLine := fmt.Sprintf("  %s %s to play\n", stone, color)

	controlsLine := `
  hjkl/↑↓←→ move   ⏎ play
      p pass   u undo   q save & quit`

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// draw renders the board into the widget, 2 screen cells per
// intersection, with row 1 on the bottom line.
func (g *GoBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := g.board.Size()
	boardW, boardH := size*2, size
	ko := g.board.KoPoint()
	lastX, lastY := g.lastMovePoint()

	for screenY := 0; screenY < size; screenY++ {
		boardY := size - 1 - screenY
		for boardX := 0; boardX < size; boardX++ {
			stone := g.board.Get(boardX, boardY)

			style := g.lineStyle
			drawRune := g.gridRune(boardX, boardY)
			switch stone {
			case board.Black:
				style = g.blackStyle
				drawRune = g.cfg.Theme.Symbols.BlackStone
			case board.White:
				style = g.whiteStyle
				drawRune = g.cfg.Theme.Symbols.WhiteStone
			}

			switch {
			case boardX == g.selX && boardY == g.selY:
				if g.drawCursor {
					style = style.Background(g.cursorBG)
				} else if stone == board.Empty {
					drawRune = g.cfg.Theme.Symbols.Cursor
				}
			case boardX == lastX && boardY == lastY:
				if g.drawLastBG {
					style = style.Background(g.lastMoveBG)
				}
			case ko != nil && boardX == ko.X && boardY == ko.Y:
				style = style.Background(g.koBG)
			}

			// Right connector: a grid line between empty neighbors.
			conn := ' '
			if boardX < size-1 && stone == board.Empty && g.board.Get(boardX+1, boardY) == board.Empty {
				conn = '─'
			}
			screen.SetContent(x+4+boardX*2, y+screenY, drawRune, nil, style)
			screen.SetContent(x+4+boardX*2+1, y+screenY, conn, nil, g.lineStyle)
		}
	}

	g.drawCoordinates(screen, x, y)
	return x, y, boardW + 4, boardH + 2
}

// gridRune picks the character for an empty intersection.
func (g *GoBoardUI) gridRune(boardX, boardY int) rune {
	size := g.board.Size()
	if render.IsStarPoint(boardX, boardY, size) {
		return '◦'
	}
	if !g.useGridRune {
		return '·'
	}

	isTop := boardY == size-1
	isBottom := boardY == 0
	isLeft := boardX == 0
	isRight := boardX == size-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// drawCoordinates labels columns A.. (skipping I) below the board and
// row numbers on the left, highlighting the cursor row and column.
func (g *GoBoardUI) drawCoordinates(screen tcell.Screen, x, y int) {
	size := g.board.Size()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.cursorBG)

	for ix := 0; ix < size; ix++ {
		letter := rune('A' + ix)
		if ix >= 8 {
			letter++ // skip 'I'
		}
		s := style
		if ix == g.selX {
			s = highlight
		}
		screen.SetContent(x+4+ix*2, y+size, letter, nil, s)
	}

	for iy := 0; iy < size; iy++ {
		displayNum := size - iy // row numbers run bottom-up
		s := style
		if displayNum-1 == g.selY {
			s = highlight
		}
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		screen.SetContent(x+1, y+iy, tensRune, nil, s)
		screen.SetContent(x+2, y+iy, rune('0'+displayNum%10), nil, s)
	}
}
