package life

import (
	"slices"
	"testing"
)

func TestStripedSeed(t *testing.T) {
	u := mustNew(t, 8, 8, Striped())
	for i, c := range u.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Fatalf("cell %d = %d, want %d", i, c, want)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := mustNew(t, 32, 24, Random(1337, 0.5))
	b := mustNew(t, 32, 24, Random(1337, 0.5))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Random with the same seed must produce the same board")
	}

	c := mustNew(t, 32, 24, Random(7331, 0.5))
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("Random with different seeds should produce different boards")
	}
}

func TestRandomDensityBounds(t *testing.T) {
	full := mustNew(t, 16, 16, Random(1, 1.1))
	if full.Population() != 256 {
		t.Fatalf("density >= 1 must fill the board, population %d", full.Population())
	}
	none := mustNew(t, 16, 16, Random(1, 0))
	if none.Population() != 0 {
		t.Fatalf("density 0 must leave the board empty, population %d", none.Population())
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"empty", "striped", "random", "glider"} {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if f == nil {
			t.Fatalf("Lookup(%q) returned a nil factory", name)
		}
	}

	if _, err := Lookup("gosper-gun"); err == nil {
		t.Fatal("Lookup of an unregistered pattern must fail")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("expected at least the 4 builtin patterns, got %v", names)
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names() must be sorted, got %v", names)
	}
}

func TestGliderFactoryMatchesStamp(t *testing.T) {
	fromPattern := mustNew(t, 8, 8, Glider(8, 8, 4, 4))
	stamped := mustNew(t, 8, 8, Empty())
	stamped.PlaceGlider(4, 4)
	if !slices.Equal(fromPattern.Cells(), stamped.Cells()) {
		t.Fatal("Glider pattern and PlaceGlider must agree")
	}
}
