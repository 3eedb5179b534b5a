package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Two coordinate encodings live here:
//
//   - SGF letter pairs: a-s on both axes, no skipped letters.
//     (0,0) -> "aa", (18,18) -> "ss".
//   - Human notation: column letter A-T skipping I, row number 1-19.
//     Column index 8 is "J", not "I"; "I" is rejected when parsing.

// SGFCoord converts a 0-indexed position to an SGF letter pair.
func SGFCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

// ParseSGFCoord converts an SGF letter pair back to 0-indexed
// coordinates. The caller is responsible for bounds checking against a
// particular board size.
func ParseSGFCoord(coord string) (x, y int, err error) {
	if len(coord) != 2 {
		return 0, 0, fmt.Errorf("invalid SGF coordinates %q", coord)
	}
	x = int(coord[0] - 'a')
	y = int(coord[1] - 'a')
	if x < 0 || x > 18 || y < 0 || y > 18 {
		return 0, 0, fmt.Errorf("invalid SGF coordinates %q", coord)
	}
	return x, y, nil
}

// HumanCoord converts a 0-indexed position to human notation, skipping
// the column letter I. (0,0) -> "A1", (8,9) -> "J10".
func HumanCoord(x, y int) string {
	col := rune('A' + x)
	if x >= 8 {
		col++ // skip 'I'
	}
	return fmt.Sprintf("%c%d", col, y+1)
}

// ParseHuman converts human notation like "D4" or "K10" to 0-indexed
// coordinates. The letter I is rejected. Bounds are checked against
// size.
func ParseHuman(coord string, size int) (x, y int, err error) {
	coord = strings.TrimSpace(strings.ToUpper(coord))
	if len(coord) < 2 || len(coord) > 3 {
		return 0, 0, fmt.Errorf("invalid coordinates %q", coord)
	}

	letter := coord[0]
	if letter == 'I' {
		return 0, 0, fmt.Errorf("invalid coordinates %q: column I is not used", coord)
	}
	if letter < 'A' || letter > 'T' {
		return 0, 0, fmt.Errorf("invalid coordinates %q", coord)
	}
	x = int(letter - 'A')
	if letter > 'I' {
		x-- // reverse the skipped 'I'
	}

	row, err := strconv.Atoi(coord[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid coordinates %q", coord)
	}
	y = row - 1

	if x < 0 || x >= size || y < 0 || y >= size {
		return 0, 0, fmt.Errorf("coordinates %q are outside the %dx%d board", coord, size, size)
	}
	return x, y, nil
}
