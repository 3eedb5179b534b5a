// Package render draws board positions as text. It reads the board
// only through its public accessors (Get, History, the capture
// counters and the ko point), never the underlying grid.
package render

import (
	"fmt"
	"strings"

	"corrgo/board"
)

// Options selects the output style.
type Options struct {
	ASCII      bool // pure ASCII symbols instead of Unicode stones and grid lines
	HideCoords bool // omit the coordinate labels around the board
}

// Render draws the board with row 1 at the bottom, columns labelled
// A.. with the letter I skipped, and a footer with capture counts,
// move count, ko point and the side to move.
func Render(b *board.Board, opts Options) string {
	var lines []string

	labels := columnLabels(b.Size())
	if !opts.HideCoords {
		lines = append(lines, labels)
	}

	for y := b.Size() - 1; y >= 0; y-- {
		var row strings.Builder
		if !opts.HideCoords {
			row.WriteString(fmt.Sprintf("%2d ", y+1))
		}
		for x := 0; x < b.Size(); x++ {
			row.WriteRune(pointRune(b, x, y, opts.ASCII))
			if x < b.Size()-1 {
				row.WriteRune(connectorRune(b, x, y, opts.ASCII))
			}
		}
		if !opts.HideCoords {
			row.WriteString(fmt.Sprintf(" %d", y+1))
		}
		lines = append(lines, row.String())
	}

	if !opts.HideCoords {
		lines = append(lines, labels)
	}

	lines = append(lines, "")
	lines = append(lines, footer(b, opts.ASCII)...)
	return strings.Join(lines, "\n")
}

// columnLabels builds the "A B C ... H J ..." header, skipping I.
func columnLabels(size int) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < size; x++ {
		letter := rune('A' + x)
		if x >= 8 {
			letter++ // skip 'I'
		}
		sb.WriteRune(letter)
		if x < size-1 {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// pointRune picks the character for one intersection.
func pointRune(b *board.Board, x, y int, ascii bool) rune {
	switch b.Get(x, y) {
	case board.Black:
		if ascii {
			return 'X'
		}
		return '●'
	case board.White:
		if ascii {
			return 'O'
		}
		return '○'
	}

	if IsStarPoint(x, y, b.Size()) {
		if ascii {
			return '+'
		}
		return '◦'
	}
	if ascii {
		return '.'
	}
	return gridRune(x, y, b.Size())
}

// connectorRune fills the gap between two intersections on a row.
func connectorRune(b *board.Board, x, y int, ascii bool) rune {
	if ascii {
		return ' '
	}
	if b.Get(x, y) != board.Empty || b.Get(x+1, y) != board.Empty {
		return ' '
	}
	return '─'
}

// gridRune returns the box-drawing character for an empty intersection.
// Remember the board is drawn with y==size-1 on the top line.
func gridRune(x, y, size int) rune {
	isTop := y == size-1
	isBottom := y == 0
	isLeft := x == 0
	isRight := x == size-1

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

// footer lists captures, move count, ko point and the side to move.
func footer(b *board.Board, ascii bool) []string {
	black, white := "●", "○"
	if ascii {
		black, white = "X", "O"
	}

	lines := []string{
		fmt.Sprintf("%s Black captured: %d", black, b.CapturedBlack()),
		fmt.Sprintf("%s White captured: %d", white, b.CapturedWhite()),
		fmt.Sprintf("Moves played: %d", len(b.History())),
	}
	if ko := b.KoPoint(); ko != nil {
		lines = append(lines, fmt.Sprintf("Ko at: %s", board.HumanCoord(ko.X, ko.Y)))
	}

	next := black + " Black"
	if b.NextColor() == board.White {
		next = white + " White"
	}
	lines = append(lines, fmt.Sprintf("Next to play: %s", next))
	return lines
}

// IsStarPoint reports whether (x, y) is a hoshi for the given board size.
func IsStarPoint(x, y, size int) bool {
	var points [][2]int
	switch size {
	case 9:
		points = [][2]int{
			{2, 2}, {2, 6},
			{4, 4},
			{6, 2}, {6, 6},
		}
	case 13:
		points = [][2]int{
			{3, 3}, {3, 9},
			{6, 6},
			{9, 3}, {9, 9},
		}
	case 19:
		points = [][2]int{
			{3, 3}, {3, 9}, {3, 15},
			{9, 3}, {9, 9}, {9, 15},
			{15, 3}, {15, 9}, {15, 15},
		}
	default:
		return false
	}

	for _, p := range points {
		if x == p[0] && y == p[1] {
			return true
		}
	}
	return false
}
