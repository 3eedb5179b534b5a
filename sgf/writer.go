// Package sgf implements SGF FF[4] export and move-list import for
// stored games.
package sgf

import (
	"fmt"
	"os"
	"strings"

	"corrgo/board"
)

// Export renders a board's move history as an SGF FF[4] game record.
// Passes are written as empty move values (";B[]").
func Export(b *board.Board) string {
	var sb strings.Builder

	sb.WriteString("(;GM[1]FF[4]CA[UTF-8]")
	sb.WriteString("AP[corrgo:1.0]")
	sb.WriteString(fmt.Sprintf("SZ[%d]", b.Size()))
	sb.WriteString("PB[Black]PW[White]")
	sb.WriteString("\n")

	for _, m := range b.History() {
		sb.WriteString(moveNode(m))
	}

	sb.WriteString(")\n")
	return sb.String()
}

// WriteFile writes the board's SGF record to path.
func WriteFile(path string, b *board.Board) error {
	if err := os.WriteFile(path, []byte(Export(b)), 0644); err != nil {
		return fmt.Errorf("write sgf file: %w", err)
	}
	return nil
}

// moveNode renders one history entry, e.g. ";B[pd]" or ";W[]" for a pass.
func moveNode(m board.Move) string {
	colorChar := "B"
	if m.Color == board.White {
		colorChar = "W"
	}
	if m.IsPass() {
		return fmt.Sprintf(";%s[]", colorChar)
	}
	return fmt.Sprintf(";%s[%s]", colorChar, board.SGFCoord(m.X, m.Y))
}
