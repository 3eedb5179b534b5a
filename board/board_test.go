package board

import (
	"reflect"
	"testing"
)

// mustBoard creates a board or fails the test.
func mustBoard(t *testing.T, size int) *Board {
	t.Helper()
	b, err := New(size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return b
}

// mustPlace plays a move that the test requires to be legal.
func mustPlace(t *testing.T, b *Board, x, y int, color Stone) {
	t.Helper()
	if ok, reason := b.Place(x, y, color); !ok {
		t.Fatalf("Place(%d, %d, %s) rejected: %s", x, y, color, reason)
	}
}

func TestNewBoardSizes(t *testing.T) {
	for _, size := range []int{9, 13, 19} {
		b, err := New(size)
		if err != nil {
			t.Errorf("New(%d): %v", size, err)
			continue
		}
		if b.Size() != size {
			t.Errorf("New(%d).Size() = %d", size, b.Size())
		}
	}

	for _, size := range []int{0, 8, 10, 20, -1} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) should be rejected", size)
		}
	}
}

func TestGetSet(t *testing.T) {
	b := mustBoard(t, 9)
	b.Set(2, 3, Black)

	if got := b.Get(2, 3); got != Black {
		t.Errorf("Get(2, 3) = %s, want black", got)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if x == 2 && y == 3 {
				continue
			}
			if got := b.Get(x, y); got != Empty {
				t.Errorf("Get(%d, %d) = %s, want empty", x, y, got)
			}
		}
	}
}

func TestGetOutOfBoundsPanics(t *testing.T) {
	b := mustBoard(t, 9)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d, %d) should panic", p[0], p[1])
				}
			}()
			b.Get(p[0], p[1])
		}()
	}
}

func TestOpposite(t *testing.T) {
	if Black.Opposite() != White {
		t.Error("black should oppose white")
	}
	if White.Opposite() != Black {
		t.Error("white should oppose black")
	}
	if Empty.Opposite() != Empty {
		t.Error("empty should oppose empty")
	}
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		size, x, y int
		want       int
	}{
		{9, 0, 0, 2},   // corner
		{9, 8, 8, 2},   // corner
		{19, 18, 18, 2}, // corner
		{9, 4, 0, 3},   // edge
		{9, 0, 4, 3},   // edge
		{9, 4, 4, 4},   // center
		{19, 9, 9, 4},  // center
	}
	for _, tt := range tests {
		b := mustBoard(t, tt.size)
		got := b.Neighbors(tt.x, tt.y)
		if len(got) != tt.want {
			t.Errorf("Neighbors(%d, %d) on %dx%d = %d positions, want %d",
				tt.x, tt.y, tt.size, tt.size, len(got), tt.want)
		}
		for _, n := range got {
			if n.X < 0 || n.X >= tt.size || n.Y < 0 || n.Y >= tt.size {
				t.Errorf("Neighbors(%d, %d) returned out-of-bounds %v", tt.x, tt.y, n)
			}
		}
	}
}

func TestGroupEmptyPoint(t *testing.T) {
	b := mustBoard(t, 9)
	if got := b.Group(4, 4); len(got) != 0 {
		t.Errorf("Group of an empty point has %d members, want 0", len(got))
	}
}

func TestGroupConnectivity(t *testing.T) {
	b := mustBoard(t, 9)
	// An L-shaped black group and a disconnected diagonal stone.
	for _, p := range []Point{{2, 2}, {2, 3}, {2, 4}, {3, 4}} {
		b.Set(p.X, p.Y, Black)
	}
	b.Set(3, 3, White) // enemy stone between them
	b.Set(4, 5, Black) // diagonal to (3,4), not connected

	group := b.Group(2, 2)
	if len(group) != 4 {
		t.Fatalf("group has %d members, want 4", len(group))
	}
	for _, p := range []Point{{2, 2}, {2, 3}, {2, 4}, {3, 4}} {
		if _, ok := group[p]; !ok {
			t.Errorf("group is missing %v", p)
		}
	}
	if _, ok := group[Point{4, 5}]; ok {
		t.Error("diagonal stone should not join the group")
	}
	if _, ok := group[Point{3, 3}]; ok {
		t.Error("enemy stone should not join the group")
	}
}

func TestHasLiberties(t *testing.T) {
	b := mustBoard(t, 9)
	b.Set(0, 0, Black)
	if !b.HasLiberties(b.Group(0, 0)) {
		t.Error("lone corner stone should have liberties")
	}

	b.Set(1, 0, White)
	b.Set(0, 1, White)
	if b.HasLiberties(b.Group(0, 0)) {
		t.Error("surrounded corner stone should have no liberties")
	}

	if b.HasLiberties(map[Point]struct{}{}) {
		t.Error("empty group should have no liberties")
	}
}

func TestSingleStoneCapture(t *testing.T) {
	b := mustBoard(t, 9)
	mustPlace(t, b, 4, 4, White)
	mustPlace(t, b, 4, 3, Black)
	mustPlace(t, b, 4, 5, Black)
	mustPlace(t, b, 3, 4, Black)
	mustPlace(t, b, 5, 4, Black) // removes the white stone

	if got := b.Get(4, 4); got != Empty {
		t.Errorf("captured point is %s, want empty", got)
	}
	if b.CapturedWhite() != 1 {
		t.Errorf("CapturedWhite() = %d, want 1", b.CapturedWhite())
	}
	if b.CapturedBlack() != 0 {
		t.Errorf("CapturedBlack() = %d, want 0", b.CapturedBlack())
	}
}

func TestGroupCaptureIncrementsBySize(t *testing.T) {
	b := mustBoard(t, 9)
	// Two connected white stones.
	mustPlace(t, b, 2, 2, White)
	mustPlace(t, b, 3, 2, White)
	// Black surrounds them.
	mustPlace(t, b, 1, 2, Black)
	mustPlace(t, b, 2, 1, Black)
	mustPlace(t, b, 3, 1, Black)
	mustPlace(t, b, 4, 2, Black)
	mustPlace(t, b, 2, 3, Black)

	if b.CapturedWhite() != 0 {
		t.Fatalf("premature capture: CapturedWhite() = %d", b.CapturedWhite())
	}

	mustPlace(t, b, 3, 3, Black) // last liberty
	if b.CapturedWhite() != 2 {
		t.Errorf("CapturedWhite() = %d, want 2", b.CapturedWhite())
	}
	if b.Get(2, 2) != Empty || b.Get(3, 2) != Empty {
		t.Error("captured group should be removed entirely")
	}
}

func TestOccupiedPointIsIllegal(t *testing.T) {
	b := mustBoard(t, 9)
	mustPlace(t, b, 4, 4, Black)

	ok, reason := b.Place(4, 4, White)
	if ok {
		t.Fatal("playing on an occupied point should be illegal")
	}
	if reason == "" {
		t.Error("occupied rejection should carry a reason")
	}
}

func TestOutOfBoundsIsIllegal(t *testing.T) {
	b := mustBoard(t, 9)
	for _, p := range [][2]int{{-1, 0}, {9, 4}, {4, 9}} {
		if ok, _ := b.IsLegal(p[0], p[1], Black); ok {
			t.Errorf("IsLegal(%d, %d) should be false", p[0], p[1])
		}
	}
}

func TestSuicideIsIllegal(t *testing.T) {
	b := mustBoard(t, 9)
	mustPlace(t, b, 1, 0, White)
	mustPlace(t, b, 0, 1, White)

	ok, reason := b.Place(0, 0, Black)
	if ok {
		t.Fatal("suicide move should be illegal")
	}
	if reason != "suicide move" {
		t.Errorf("reason = %q, want \"suicide move\"", reason)
	}
	if b.Get(0, 0) != Empty {
		t.Error("rejected move must not leave a stone behind")
	}
}

func TestCapturingMoveIsNotSuicide(t *testing.T) {
	b := mustBoard(t, 9)
	// White corner stone at (0,0) with black at (0,1); white at (1,0)
	// would itself be capturable, but black playing there captures first.
	mustPlace(t, b, 0, 0, White)
	mustPlace(t, b, 0, 1, Black)
	mustPlace(t, b, 1, 1, Black)
	mustPlace(t, b, 2, 0, Black)

	// (1,0) has liberties only through the doomed white stone's point.
	mustPlace(t, b, 1, 0, Black)
	if b.Get(0, 0) != Empty {
		t.Error("white stone should be captured")
	}
	if b.CapturedWhite() != 1 {
		t.Errorf("CapturedWhite() = %d, want 1", b.CapturedWhite())
	}
}

func TestIsLegalHasNoSideEffects(t *testing.T) {
	b := mustBoard(t, 9)
	// Capture-ready position: checking legality of the capturing move
	// must not actually capture.
	mustPlace(t, b, 4, 4, White)
	mustPlace(t, b, 4, 3, Black)
	mustPlace(t, b, 4, 5, Black)
	mustPlace(t, b, 3, 4, Black)

	before := b.Snapshot()
	if ok, reason := b.IsLegal(5, 4, Black); !ok {
		t.Fatalf("capturing move should be legal: %s", reason)
	}
	if !reflect.DeepEqual(before, b.Snapshot()) {
		t.Error("IsLegal mutated the board")
	}

	// Also for a rejected suicide check.
	if ok, _ := b.IsLegal(4, 4, White); ok {
		t.Fatal("replaying into the surrounded point should be suicide")
	}
	if !reflect.DeepEqual(before, b.Snapshot()) {
		t.Error("rejected IsLegal mutated the board")
	}
}

// setupKo builds the classic ko shape and has black take the white
// stone at (2,2) by playing (3,2). Returns the board with the ko
// restriction at (2,2) active against white.
func setupKo(t *testing.T) *Board {
	t.Helper()
	b := mustBoard(t, 9)
	mustPlace(t, b, 1, 2, Black)
	mustPlace(t, b, 2, 1, Black)
	mustPlace(t, b, 2, 3, Black)
	mustPlace(t, b, 4, 2, White)
	mustPlace(t, b, 3, 1, White)
	mustPlace(t, b, 3, 3, White)
	mustPlace(t, b, 2, 2, White)
	mustPlace(t, b, 3, 2, Black) // captures the white stone at (2,2)
	return b
}

func TestKoDetection(t *testing.T) {
	b := setupKo(t)

	if b.CapturedWhite() != 1 {
		t.Fatalf("CapturedWhite() = %d, want 1", b.CapturedWhite())
	}
	ko := b.KoPoint()
	if ko == nil {
		t.Fatal("ko point should be set after the single-stone capture")
	}
	if ko.X != 2 || ko.Y != 2 {
		t.Fatalf("ko point = %v, want (2, 2)", *ko)
	}

	ok, reason := b.Place(2, 2, White)
	if ok {
		t.Fatal("immediate recapture should be forbidden by ko")
	}
	if reason != "ko rule forbids immediate recapture" {
		t.Errorf("reason = %q", reason)
	}
}

func TestKoClearedByInterveningMove(t *testing.T) {
	b := setupKo(t)

	mustPlace(t, b, 6, 6, White) // play elsewhere
	if b.KoPoint() != nil {
		t.Fatal("ko restriction should be cleared by the next move")
	}

	// The recapture is now legal and takes the black stone.
	mustPlace(t, b, 2, 2, White)
	if b.Get(3, 2) != Empty {
		t.Error("recapture should remove the black stone")
	}
	if b.CapturedBlack() != 1 {
		t.Errorf("CapturedBlack() = %d, want 1", b.CapturedBlack())
	}
}

func TestKoSurvivesPass(t *testing.T) {
	b := setupKo(t)

	b.Pass(White)
	if b.KoPoint() == nil {
		t.Fatal("a pass records no placement and leaves the ko point alone")
	}
}

func TestNoKoAfterMultiStoneCapture(t *testing.T) {
	b := mustBoard(t, 9)
	mustPlace(t, b, 2, 2, White)
	mustPlace(t, b, 3, 2, White)
	mustPlace(t, b, 1, 2, Black)
	mustPlace(t, b, 2, 1, Black)
	mustPlace(t, b, 3, 1, Black)
	mustPlace(t, b, 4, 2, Black)
	mustPlace(t, b, 2, 3, Black)
	mustPlace(t, b, 3, 3, Black)

	if b.CapturedWhite() != 2 {
		t.Fatalf("CapturedWhite() = %d, want 2", b.CapturedWhite())
	}
	if b.KoPoint() != nil {
		t.Error("capturing two stones must not set a ko point")
	}
}

func TestNoKoWhenCapturingStoneKeepsLiberties(t *testing.T) {
	// Spec scenario: black (1,1), white (1,0), black (0,0), black (2,0)
	// captures the lone white stone, but the capturing stone keeps
	// liberties, so there is no ko.
	b := mustBoard(t, 9)
	mustPlace(t, b, 1, 1, Black)
	mustPlace(t, b, 1, 0, White)
	mustPlace(t, b, 0, 0, Black)

	if b.CapturedWhite() != 0 {
		t.Fatalf("nothing should be captured yet, CapturedWhite() = %d", b.CapturedWhite())
	}
	if b.Get(1, 0) != White {
		t.Fatal("white stone should still be on the board")
	}

	mustPlace(t, b, 2, 0, Black)
	if b.CapturedWhite() != 1 {
		t.Errorf("CapturedWhite() = %d, want 1", b.CapturedWhite())
	}
	if b.KoPoint() != nil {
		t.Error("no ko: the recapture would not be a lone capturable stone")
	}
}

func TestNextColorParity(t *testing.T) {
	b := mustBoard(t, 9)
	if b.NextColor() != Black {
		t.Error("black moves first")
	}
	mustPlace(t, b, 4, 4, Black)
	if b.NextColor() != White {
		t.Error("white moves second")
	}
	b.Pass(White)
	if b.NextColor() != Black {
		t.Error("a pass still advances the turn")
	}
}

func TestPassRecordsSentinel(t *testing.T) {
	b := mustBoard(t, 9)
	b.Pass(Black)

	history := b.History()
	if len(history) != 1 {
		t.Fatalf("history has %d entries, want 1", len(history))
	}
	if !history[0].IsPass() {
		t.Error("pass entry should report IsPass")
	}
	if history[0].X != PassCoord || history[0].Y != PassCoord {
		t.Errorf("pass entry = (%d, %d), want (%d, %d)", history[0].X, history[0].Y, PassCoord, PassCoord)
	}
	if history[0].Color != Black {
		t.Errorf("pass entry color = %s, want black", history[0].Color)
	}
}

func TestUndoEmptyBoard(t *testing.T) {
	b := mustBoard(t, 9)
	if b.UndoLast() {
		t.Error("undo on an empty history should report false")
	}
}

func TestUndoMatchesReplay(t *testing.T) {
	script := func() *Board {
		b := mustBoard(t, 9)
		mustPlace(t, b, 4, 4, White)
		mustPlace(t, b, 4, 3, Black)
		mustPlace(t, b, 4, 5, Black)
		b.Pass(White)
		mustPlace(t, b, 3, 4, Black)
		return b
	}

	full := script()
	mustPlace(t, full, 5, 4, Black) // the capture that will be undone
	if full.CapturedWhite() != 1 {
		t.Fatalf("CapturedWhite() = %d, want 1", full.CapturedWhite())
	}

	if !full.UndoLast() {
		t.Fatal("undo failed")
	}

	want := script()
	if !reflect.DeepEqual(full.Snapshot(), want.Snapshot()) {
		t.Errorf("undo result differs from replaying the shortened history\ngot:  %+v\nwant: %+v",
			full.Snapshot(), want.Snapshot())
	}
}

func TestUndoRestoresKoState(t *testing.T) {
	b := setupKo(t)
	mustPlace(t, b, 6, 6, White) // clears the ko

	if !b.UndoLast() {
		t.Fatal("undo failed")
	}
	ko := b.KoPoint()
	if ko == nil || ko.X != 2 || ko.Y != 2 {
		t.Errorf("undo should restore the ko point at (2, 2), got %v", ko)
	}
}

func TestUndoPass(t *testing.T) {
	b := mustBoard(t, 9)
	mustPlace(t, b, 4, 4, Black)
	b.Pass(White)

	if !b.UndoLast() {
		t.Fatal("undo failed")
	}

	want := mustBoard(t, 9)
	mustPlace(t, want, 4, 4, Black)
	if !reflect.DeepEqual(b.Snapshot(), want.Snapshot()) {
		t.Error("undoing a pass should leave just the placed stone")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := setupKo(t)
	b.Pass(White)

	loaded, err := FromSnapshot(b.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if !reflect.DeepEqual(b.Snapshot(), loaded.Snapshot()) {
		t.Fatal("loaded board differs from the original")
	}

	// The loaded board must behave identically, including the ko ban.
	if ok, _ := loaded.Place(2, 2, White); ok {
		t.Error("ko restriction should survive the round trip")
	}
	if len(loaded.History()) != len(b.History()) {
		t.Errorf("history length %d, want %d", len(loaded.History()), len(b.History()))
	}
}

func TestFromSnapshotRejectsBadData(t *testing.T) {
	good := mustBoard(t, 9).Snapshot()

	bad := good
	bad.Size = 10
	if _, err := FromSnapshot(bad); err == nil {
		t.Error("invalid size should be rejected")
	}

	bad = good
	bad.Grid = bad.Grid[:5]
	if _, err := FromSnapshot(bad); err == nil {
		t.Error("truncated grid should be rejected")
	}

	bad = mustBoard(t, 9).Snapshot()
	bad.Grid[0][0] = 7
	if _, err := FromSnapshot(bad); err == nil {
		t.Error("invalid stone value should be rejected")
	}

	bad = mustBoard(t, 9).Snapshot()
	bad.Moves = [][3]int{{4, 4, 0}}
	if _, err := FromSnapshot(bad); err == nil {
		t.Error("move with empty color should be rejected")
	}
}
