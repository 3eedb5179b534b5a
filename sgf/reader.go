package sgf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"corrgo/board"
)

// GameRecord holds the parts of an SGF file the import command needs:
// the declared board size and the main-line moves in order.
type GameRecord struct {
	BoardSize int
	Moves     []board.Move
}

// ReadFile parses an SGF file into a GameRecord. Only the root SZ
// property and the main-line B/W move nodes are read; variations and
// other properties are ignored. A missing SZ defaults to 19.
func ReadFile(path string) (*GameRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sgf file: %w", err)
	}
	return Parse(string(data))
}

// Parse parses SGF text into a GameRecord.
func Parse(content string) (*GameRecord, error) {
	if !strings.Contains(content, "(;") {
		return nil, fmt.Errorf("not an SGF file: missing \"(;\" header")
	}

	rec := &GameRecord{BoardSize: 19}
	if v, ok := rootProperty(content, "SZ"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SZ property %q", v)
		}
		rec.BoardSize = n
	}

	for _, node := range moveNodes(content) {
		m, ok, err := parseMoveNode(node)
		if err != nil {
			return nil, err
		}
		if ok {
			rec.Moves = append(rec.Moves, m)
		}
	}
	return rec, nil
}

// rootProperty extracts the value of a KEY[value] property from the
// root node.
func rootProperty(content, key string) (string, bool) {
	start := strings.Index(content, "(;")
	if start == -1 {
		return "", false
	}
	start += 2

	// Root node ends at the next ';', '(' or ')'.
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == ';' || content[i] == '(' || content[i] == ')' {
			end = i
			break
		}
	}
	root := content[start:end]

	idx := strings.Index(root, key+"[")
	if idx == -1 {
		return "", false
	}
	valStart := idx + len(key) + 1
	valEnd := strings.Index(root[valStart:], "]")
	if valEnd == -1 {
		return "", false
	}
	return root[valStart : valStart+valEnd], true
}

// moveNodes returns the node strings of the main line. At every branch
// the first subtree continues the main line, so the walk descends into
// each first "(" and ends at the first ")": everything after that is a
// sibling variation. Bracketed values are skipped, so "(", ")" and ";"
// inside them do not confuse the walk.
func moveNodes(content string) []string {
	var nodes []string

	start := strings.Index(content, "(;")
	if start == -1 {
		return nodes
	}
	i := start + 1

	for i < len(content) {
		switch content[i] {
		case ';':
			nodeStart := i
			i++
			for i < len(content) && content[i] != ';' && content[i] != '(' && content[i] != ')' {
				if content[i] == '[' {
					i = skipValue(content, i)
				}
				i++
			}
			nodes = append(nodes, content[nodeStart:i])
		case '(':
			i++
		case ')':
			return nodes
		default:
			i++
		}
	}
	return nodes
}

// skipValue advances from an opening '[' to its matching ']', honoring
// backslash escapes. Returns the index of the closing bracket.
func skipValue(content string, i int) int {
	i++ // skip '['
	for i < len(content) && content[i] != ']' {
		if content[i] == '\\' && i+1 < len(content) {
			i++
		}
		i++
	}
	return i
}

// parseMoveNode extracts a move from a node like ";B[pd]". Nodes that
// are not B/W moves report ok=false; malformed coordinates are an error.
func parseMoveNode(node string) (m board.Move, ok bool, err error) {
	node = strings.TrimSpace(node)
	if len(node) < 2 || node[0] != ';' {
		return m, false, nil
	}

	var color board.Stone
	switch node[1] {
	case 'B':
		color = board.Black
	case 'W':
		color = board.White
	default:
		return m, false, nil
	}

	// Properties like BL or WR share the first letter with a move but
	// are not one. A move node has its bracket right after the color.
	open := strings.Index(node, "[")
	closing := strings.Index(node, "]")
	if open != 2 || closing == -1 || closing < open {
		return m, false, nil
	}

	coord := node[open+1 : closing]
	if coord == "" || coord == "tt" { // both spellings of a pass
		return board.NewPass(color), true, nil
	}

	x, y, err := board.ParseSGFCoord(coord)
	if err != nil {
		return m, false, err
	}
	return board.Move{X: x, Y: y, Color: color}, true, nil
}
