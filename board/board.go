// Package board implements the Go board: stone placement, group and
// liberty computation, capture resolution, simple-ko detection, and
// replay-based undo.
package board

import "fmt"

// Stone is the state of a single intersection.
type Stone int

const (
	Empty Stone = iota
	Black
	White
)

// Opposite returns the opposing color. Empty maps to Empty.
func (s Stone) Opposite() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// String returns "empty", "black" or "white".
func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Point is a 0-indexed board position.
type Point struct {
	X int
	Y int
}

// Board holds the full state of a game: the grid, capture counters,
// move history and the current ko point. The grid is a cache derived
// from the history; undo rebuilds it by replay rather than editing it
// in place.
type Board struct {
	size          int
	grid          [][]Stone
	capturedBlack int // black stones removed from the board
	capturedWhite int // white stones removed from the board
	history       []Move
	koPoint       *Point
}

// New creates an empty board. Size must be 9, 13 or 19.
func New(size int) (*Board, error) {
	if size != 9 && size != 13 && size != 19 {
		return nil, fmt.Errorf("board size must be 9, 13 or 19, got %d", size)
	}
	grid := make([][]Stone, size)
	for i := range grid {
		grid[i] = make([]Stone, size)
	}
	return &Board{size: size, grid: grid}, nil
}

// Size returns the board's side length.
func (b *Board) Size() int {
	return b.size
}

// Get returns the stone at (x, y). Panics if the position is off the
// board; callers are expected to validate coordinates first.
func (b *Board) Get(x, y int) Stone {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("board: position (%d, %d) out of bounds on %dx%d board", x, y, b.size, b.size))
	}
	return b.grid[y][x]
}

// Set writes the stone at (x, y). Panics if the position is off the board.
func (b *Board) Set(x, y int, s Stone) {
	if !b.inBounds(x, y) {
		panic(fmt.Sprintf("board: position (%d, %d) out of bounds on %dx%d board", x, y, b.size, b.size))
	}
	b.grid[y][x] = s
}

// CapturedBlack returns the number of black stones captured so far.
func (b *Board) CapturedBlack() int {
	return b.capturedBlack
}

// CapturedWhite returns the number of white stones captured so far.
func (b *Board) CapturedWhite() int {
	return b.capturedWhite
}

// History returns the move history in play order. The caller must not
// modify the returned slice.
func (b *Board) History() []Move {
	return b.history
}

// KoPoint returns the intersection currently forbidden by the ko rule,
// or nil if there is none.
func (b *Board) KoPoint() *Point {
	if b.koPoint == nil {
		return nil
	}
	p := *b.koPoint
	return &p
}

// NextColor returns the color to move assuming strict alternation:
// black on an even number of played moves, white on odd.
func (b *Board) NextColor() Stone {
	if len(b.history)%2 == 0 {
		return Black
	}
	return White
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// Neighbors returns the orthogonally adjacent in-bounds positions.
// Corners have 2 neighbors, edges 3, interior points 4.
func (b *Board) Neighbors(x, y int) []Point {
	neighbors := make([]Point, 0, 4)
	for _, d := range [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		nx, ny := x+d.X, y+d.Y
		if b.inBounds(nx, ny) {
			neighbors = append(neighbors, Point{nx, ny})
		}
	}
	return neighbors
}

// Group returns the maximal connected set of same-colored stones
// containing (x, y), found by an iterative flood fill. An empty
// intersection yields an empty set.
func (b *Board) Group(x, y int) map[Point]struct{} {
	group := make(map[Point]struct{})
	color := b.Get(x, y)
	if color == Empty {
		return group
	}

	worklist := []Point{{x, y}}
	for len(worklist) > 0 {
		p := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if _, seen := group[p]; seen {
			continue
		}
		group[p] = struct{}{}
		for _, n := range b.Neighbors(p.X, p.Y) {
			if _, seen := group[n]; !seen && b.Get(n.X, n.Y) == color {
				worklist = append(worklist, n)
			}
		}
	}
	return group
}

// HasLiberties reports whether any stone in the group has an adjacent
// empty intersection. An empty group has no liberties.
func (b *Board) HasLiberties(group map[Point]struct{}) bool {
	for p := range group {
		for _, n := range b.Neighbors(p.X, p.Y) {
			if b.Get(n.X, n.Y) == Empty {
				return true
			}
		}
	}
	return false
}

// removeGroup clears every stone in the group and returns its size.
func (b *Board) removeGroup(group map[Point]struct{}) int {
	for p := range group {
		b.grid[p.Y][p.X] = Empty
	}
	return len(group)
}

// captureAround removes any enemy group adjacent to (x, y) that is left
// without liberties, returning the total number of stones removed.
// A neighbor belonging to an already-removed group reads as empty, so
// each group is only removed once.
func (b *Board) captureAround(x, y int, color Stone) int {
	captured := 0
	enemy := color.Opposite()
	for _, n := range b.Neighbors(x, y) {
		if b.Get(n.X, n.Y) != enemy {
			continue
		}
		group := b.Group(n.X, n.Y)
		if !b.HasLiberties(group) {
			captured += b.removeGroup(group)
		}
	}
	return captured
}

// IsLegal checks whether color may play at (x, y). Illegal moves are an
// expected outcome, reported as (false, reason) rather than an error.
// The check is free of observable side effects: the speculative
// placement and captures are fully reverted before returning.
func (b *Board) IsLegal(x, y int, color Stone) (bool, string) {
	if !b.inBounds(x, y) {
		return false, fmt.Sprintf("position (%d, %d) is out of bounds", x, y)
	}
	if occupant := b.Get(x, y); occupant != Empty {
		return false, fmt.Sprintf("position is occupied by %s", occupant)
	}
	if b.koPoint != nil && b.koPoint.X == x && b.koPoint.Y == y {
		return false, "ko rule forbids immediate recapture"
	}

	saved := b.cloneGrid()
	b.grid[y][x] = color
	captured := b.captureAround(x, y, color)
	suicide := captured == 0 && !b.HasLiberties(b.Group(x, y))
	b.grid = saved

	if suicide {
		return false, "suicide move"
	}
	return true, ""
}

// Place plays a stone for color at (x, y). On an illegal move the board
// is left untouched and the reason is returned. On success captures are
// resolved, the ko point recomputed and the move appended to history.
func (b *Board) Place(x, y int, color Stone) (bool, string) {
	if ok, reason := b.IsLegal(x, y, color); !ok {
		return false, reason
	}

	b.grid[y][x] = color
	captured := b.captureAround(x, y, color)
	if color == Black {
		b.capturedWhite += captured
	} else {
		b.capturedBlack += captured
	}

	b.koPoint = nil
	if captured == 1 {
		b.findKoPoint(x, y, color)
	}

	b.history = append(b.history, Move{X: x, Y: y, Color: color})
	return true, ""
}

// findKoPoint looks for a simple-ko restriction after a single-stone
// capture by color at (x, y): the capture point is forbidden to the
// opponent if recapturing there would be a lone stone that immediately
// takes the last liberty of the stone just played. Speculative
// placements are reverted before returning.
func (b *Board) findKoPoint(x, y int, color Stone) {
	enemy := color.Opposite()
	for _, n := range b.Neighbors(x, y) {
		if b.Get(n.X, n.Y) != Empty {
			continue
		}
		b.grid[n.Y][n.X] = enemy
		lone := len(b.Group(n.X, n.Y)) == 1
		if lone && !b.HasLiberties(b.Group(x, y)) {
			b.koPoint = &Point{n.X, n.Y}
		}
		b.grid[n.Y][n.X] = Empty
		if lone {
			return
		}
	}
}

// Pass records a pass for color. Passes carry the (-1, -1) sentinel and
// never alter the grid, the counters or the ko point.
func (b *Board) Pass(color Stone) {
	b.history = append(b.history, NewPass(color))
}

// UndoLast removes the most recent history entry and reconstructs the
// grid, capture counters and ko point by replaying the remaining
// history from an empty board. Returns false if there is nothing to
// undo. Replay guarantees the result is exactly the state that playing
// the shortened history would have produced.
func (b *Board) UndoLast() bool {
	if len(b.history) == 0 {
		return false
	}

	remaining := b.history[:len(b.history)-1]
	fresh, err := New(b.size)
	if err != nil {
		panic(err) // size was validated at construction
	}
	for _, m := range remaining {
		if m.IsPass() {
			fresh.Pass(m.Color)
			continue
		}
		if ok, reason := fresh.Place(m.X, m.Y, m.Color); !ok {
			panic(fmt.Sprintf("board: history replay rejected move (%d, %d) %s: %s", m.X, m.Y, m.Color, reason))
		}
	}

	b.grid = fresh.grid
	b.capturedBlack = fresh.capturedBlack
	b.capturedWhite = fresh.capturedWhite
	b.koPoint = fresh.koPoint
	b.history = fresh.history
	return true
}

// cloneGrid returns a deep copy of the grid for speculative play.
func (b *Board) cloneGrid() [][]Stone {
	grid := make([][]Stone, b.size)
	for y := range b.grid {
		grid[y] = make([]Stone, b.size)
		copy(grid[y], b.grid[y])
	}
	return grid
}
