package life

import (
	"slices"
	"testing"
)

func mustNew(t *testing.T, w, h int, p Pattern) *Universe {
	t.Helper()
	u, err := New(w, h, p)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return u
}

func liveSet(u *Universe) map[[2]int]bool {
	live := map[[2]int]bool{}
	for row := 0; row < u.Height(); row++ {
		for col := 0; col < u.Width(); col++ {
			if u.Cells()[u.Index(row, col)] == Alive {
				live[[2]int{row, col}] = true
			}
		}
	}
	return live
}

func TestZeroAreaConstruction(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 5}} {
		u, err := New(dims[0], dims[1], Empty())
		if err == nil {
			t.Fatalf("New(%d, %d) must fail", dims[0], dims[1])
		}
		if u != nil {
			t.Fatalf("New(%d, %d) must not produce a universe on failure", dims[0], dims[1])
		}
	}
}

func TestBufferLengthAfterTicks(t *testing.T) {
	u := mustNew(t, 7, 5, Striped())
	if len(u.Cells()) != 35 {
		t.Fatalf("buffer length %d after construction, want 35", len(u.Cells()))
	}
	for i := 0; i < 10; i++ {
		u.Tick()
		if len(u.Cells()) != 35 {
			t.Fatalf("buffer length %d after tick %d, want 35", len(u.Cells()), i+1)
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	u := mustNew(t, 5, 5, Empty())
	if err := u.SetCells([][2]int{{2, 2}}); err != nil {
		t.Fatalf("SetCells: %v", err)
	}
	u.Tick()
	if u.Population() != 0 {
		t.Fatalf("lone cell must die of underpopulation, %d cells alive", u.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	u := mustNew(t, 6, 6, Empty())
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	if err := u.SetCells(block); err != nil {
		t.Fatalf("SetCells: %v", err)
	}
	before := append([]uint8(nil), u.Cells()...)
	u.Tick()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("2x2 block must be unchanged by a tick")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u := mustNew(t, 5, 5, Empty())
	if err := u.SetCells([][2]int{{2, 1}, {2, 2}, {2, 3}}); err != nil {
		t.Fatalf("SetCells: %v", err)
	}

	u.Tick()
	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := u.Cells()[u.Index(row, col)] == Alive
			if expects[[2]int{row, col}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, expects[[2]int{row, col}])
			}
		}
	}

	u.Tick()
	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := u.Cells()[u.Index(row, col)] == Alive
			if expects[[2]int{row, col}] != alive {
				t.Fatalf("after second tick cell (%d,%d) alive=%v, expected %v", row, col, alive, expects[[2]int{row, col}])
			}
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	u := mustNew(t, 8, 8, Glider(8, 8, 4, 4))
	initial := liveSet(u)
	if len(initial) != 5 {
		t.Fatalf("glider must seed 5 live cells, got %d", len(initial))
	}

	// This glider moves up one row and right one column every 4 ticks.
	for i := 0; i < 4; i++ {
		u.Tick()
	}
	want := map[[2]int]bool{}
	for rc := range initial {
		want[[2]int{wrap(rc[0]-1, 8), wrap(rc[1]+1, 8)}] = true
	}
	got := liveSet(u)
	if len(got) != len(want) {
		t.Fatalf("glider lost its shape: %d live cells, want %d", len(got), len(want))
	}
	for rc := range want {
		if !got[rc] {
			t.Fatalf("cell (%d,%d) should be alive after 4 ticks", rc[0], rc[1])
		}
	}

	// 28 more ticks take it all the way around the 8x8 torus.
	seed := mustNew(t, 8, 8, Glider(8, 8, 4, 4))
	for i := 0; i < 28; i++ {
		u.Tick()
	}
	if !slices.Equal(seed.Cells(), u.Cells()) {
		t.Fatal("glider must return to its seed position after wrapping the torus")
	}
}

func TestNextStateRule(t *testing.T) {
	cases := []struct {
		alive     bool
		neighbors int
		want      bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
	}
	for _, c := range cases {
		if got := NextState(c.alive, c.neighbors); got != c.want {
			t.Fatalf("NextState(%v, %d) = %v, want %v", c.alive, c.neighbors, got, c.want)
		}
	}
}

func TestTickDeterministic(t *testing.T) {
	a := mustNew(t, 16, 16, Random(99, 0.5))
	b := mustNew(t, 16, 16, Random(99, 0.5))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds must produce identical boards")
	}
	for i := 0; i < 8; i++ {
		a.Tick()
		b.Tick()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("cloned universes diverged at tick %d", i+1)
		}
	}
}

func TestToggle(t *testing.T) {
	u := mustNew(t, 4, 4, Empty())
	if err := u.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle(1, 2): %v", err)
	}
	if u.Cells()[u.Index(1, 2)] != Alive {
		t.Fatal("toggled dead cell must be alive")
	}
	if u.Population() != 1 {
		t.Fatalf("toggle must not affect other cells, population %d", u.Population())
	}
	if err := u.Toggle(1, 2); err != nil {
		t.Fatalf("Toggle(1, 2) again: %v", err)
	}
	if u.Population() != 0 {
		t.Fatal("toggled live cell must be dead")
	}

	before := append([]uint8(nil), u.Cells()...)
	for _, rc := range [][2]int{{4, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		if err := u.Toggle(rc[0], rc[1]); err == nil {
			t.Fatalf("Toggle(%d, %d) must fail out of range", rc[0], rc[1])
		}
	}
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("failed toggles must not mutate the universe")
	}
}

func TestSetCellsRejectsOutOfRange(t *testing.T) {
	u := mustNew(t, 4, 4, Empty())
	err := u.SetCells([][2]int{{0, 0}, {4, 4}})
	if err == nil {
		t.Fatal("SetCells with an out-of-range pair must fail")
	}
	if u.Population() != 0 {
		t.Fatal("failed SetCells must leave no partial effect")
	}
}

func TestResetReusesBuffer(t *testing.T) {
	u := mustNew(t, 6, 6, Striped())
	before := u.Cells()
	u.Reset(Empty())
	after := u.Cells()
	if &before[0] != &after[0] {
		t.Fatal("Reset must reinitialize in place, not reallocate")
	}
	if u.Population() != 0 {
		t.Fatalf("Reset(Empty) must clear the board, population %d", u.Population())
	}
}

func TestPlaceGliderWrapsEdges(t *testing.T) {
	u := mustNew(t, 8, 8, Empty())
	u.PlaceGlider(0, 0)
	if u.Population() != 5 {
		t.Fatalf("glider stamp must set 5 live cells, got %d", u.Population())
	}
	live := liveSet(u)
	for rc := range live {
		if rc[0] > 1 && rc[0] < 7 || rc[1] > 1 && rc[1] < 7 {
			t.Fatalf("cell (%d,%d) outside the wrapped corner stamp", rc[0], rc[1])
		}
	}
}

func TestStringRaster(t *testing.T) {
	u := mustNew(t, 3, 2, Empty())
	if err := u.SetCells([][2]int{{0, 1}, {1, 0}}); err != nil {
		t.Fatalf("SetCells: %v", err)
	}
	want := "◻◼◻\n◼◻◻\n"
	if got := u.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
