package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"corrgo/board"
)

// GameInfoPanel displays game information and the move history tail
// alongside the board.
type GameInfoPanel struct {
	box   *tview.TextView
	board *board.Board
	name  string
}

// NewGameInfoPanel creates a panel for the named game.
func NewGameInfoPanel(name string, b *board.Board) *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		board: b,
		name:  name,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	panel.Refresh()
	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Refresh updates the panel text from the board.
func (p *GameInfoPanel) Refresh() {
	var text string

	text += fmt.Sprintf("[white::b]%s[-:-:-]\n", p.name)
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", p.board.Size(), p.board.Size())
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", len(p.board.History()))
	text += fmt.Sprintf("[white]B captured:[-:-:-] %d\n", p.board.CapturedBlack())
	text += fmt.Sprintf("[white]W captured:[-:-:-] %d\n", p.board.CapturedWhite())
	if ko := p.board.KoPoint(); ko != nil {
		text += fmt.Sprintf("[red]Ko at %s[-:-:-]\n", board.HumanCoord(ko.X, ko.Y))
	}

	history := p.board.History()
	if len(history) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		maxVisible := 12
		start := 0
		if len(history) > maxVisible {
			start = len(history) - maxVisible
		}

		for i := start; i < len(history); i++ {
			m := history[i]

			colorStr := "[white]B[-]"
			if m.Color == board.White {
				colorStr = "[dimgray]W[-]"
			}

			coord := "pass"
			if !m.IsPass() {
				coord = board.HumanCoord(m.X, m.Y)
			}

			marker := " "
			if i == len(history)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, coord)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board, info panel
// and hint bar.
func CreateGameLayout(gameBoard *GoBoardUI, panel *GameInfoPanel, hint *tview.TextView) *tview.Flex {
	gameBoard.infoPanel = panel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(gameBoard.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}
