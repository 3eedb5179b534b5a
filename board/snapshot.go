package board

import "fmt"

// Snapshot is the serializable dump of a board: the grid as 0/1/2
// values, both capture counters, the move history as (x, y, color)
// triples with (-1, -1) for passes, and the nullable ko point. It is
// the on-disk format of the game store.
type Snapshot struct {
	Size          int      `json:"size"`
	Grid          [][]int  `json:"board"`
	CapturedBlack int      `json:"captured_black"`
	CapturedWhite int      `json:"captured_white"`
	Moves         [][3]int `json:"moves"`
	KoPoint       *[2]int  `json:"ko_point"`
}

// Snapshot dumps the board's full state.
func (b *Board) Snapshot() Snapshot {
	grid := make([][]int, b.size)
	for y := range b.grid {
		grid[y] = make([]int, b.size)
		for x, s := range b.grid[y] {
			grid[y][x] = int(s)
		}
	}

	moves := make([][3]int, len(b.history))
	for i, m := range b.history {
		moves[i] = [3]int{m.X, m.Y, int(m.Color)}
	}

	snap := Snapshot{
		Size:          b.size,
		Grid:          grid,
		CapturedBlack: b.capturedBlack,
		CapturedWhite: b.capturedWhite,
		Moves:         moves,
	}
	if b.koPoint != nil {
		snap.KoPoint = &[2]int{b.koPoint.X, b.koPoint.Y}
	}
	return snap
}

// FromSnapshot reconstructs a board by restoring every field directly.
// It does not replay the history: the grid, counters and ko point come
// from the snapshot as-is, so the result is indistinguishable from the
// board that produced it.
func FromSnapshot(snap Snapshot) (*Board, error) {
	b, err := New(snap.Size)
	if err != nil {
		return nil, err
	}
	if len(snap.Grid) != snap.Size {
		return nil, fmt.Errorf("snapshot grid has %d rows, want %d", len(snap.Grid), snap.Size)
	}

	for y, row := range snap.Grid {
		if len(row) != snap.Size {
			return nil, fmt.Errorf("snapshot grid row %d has %d columns, want %d", y, len(row), snap.Size)
		}
		for x, v := range row {
			if v < int(Empty) || v > int(White) {
				return nil, fmt.Errorf("snapshot grid has invalid stone value %d at (%d, %d)", v, x, y)
			}
			b.grid[y][x] = Stone(v)
		}
	}

	b.capturedBlack = snap.CapturedBlack
	b.capturedWhite = snap.CapturedWhite

	b.history = make([]Move, len(snap.Moves))
	for i, m := range snap.Moves {
		color := Stone(m[2])
		if color != Black && color != White {
			return nil, fmt.Errorf("snapshot move %d has invalid color %d", i+1, m[2])
		}
		b.history[i] = Move{X: m[0], Y: m[1], Color: color}
	}

	if snap.KoPoint != nil {
		b.koPoint = &Point{snap.KoPoint[0], snap.KoPoint[1]}
	}
	return b, nil
}
