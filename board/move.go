package board

// PassCoord is the sentinel coordinate recorded for both axes of a pass.
const PassCoord = -1

// Move is one entry in a board's history: a 0-indexed position and the
// color that played it. Moves are immutable once recorded. A pass is a
// move with both coordinates set to PassCoord.
type Move struct {
	X     int
	Y     int
	Color Stone
}

// NewPass returns the pass move for color.
func NewPass(color Stone) Move {
	return Move{X: PassCoord, Y: PassCoord, Color: color}
}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool {
	return m.X == PassCoord && m.Y == PassCoord
}

// String renders the move for history listings, e.g. "black D4" or
// "white passes".
func (m Move) String() string {
	if m.IsPass() {
		return m.Color.String() + " passes"
	}
	return m.Color.String() + " " + HumanCoord(m.X, m.Y)
}
