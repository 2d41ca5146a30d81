package life

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// Pattern decides the initial state of the cell at a linear buffer index.
// Patterns are applied in index order, so stateful patterns (such as the
// random ones) produce the same board for the same inputs.
type Pattern func(idx int) uint8

// gliderStamp is the 3x3 glider used by PlaceGlider and the glider
// pattern factory. It translates up and one column to the right every
// four generations.
var gliderStamp = [9]uint8{
	0, 1, 1,
	1, 0, 1,
	0, 0, 1,
}

// Empty leaves every cell dead.
func Empty() Pattern {
	return func(int) uint8 { return Dead }
}

// Striped reproduces the classic deterministic seed: every second and every
// seventh cell starts alive.
func Striped() Pattern {
	return func(idx int) uint8 {
		if idx%2 == 0 || idx%7 == 0 {
			return Alive
		}
		return Dead
	}
}

// Random seeds each cell alive with the given probability. The same seed
// and density always produce the same board.
func Random(seed int64, density float64) Pattern {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return func(int) uint8 {
		if rng.Float64() < density {
			return Alive
		}
		return Dead
	}
}

// Glider returns a pattern for a w x h board that is empty except for a
// single glider centered at (row, col), wrapped toroidally.
func Glider(w, h, row, col int) Pattern {
	live := make(map[int]bool, len(gliderStamp))
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if gliderStamp[i] == Alive {
				live[wrap(row+dr, h)*w+wrap(col+dc, w)] = true
			}
			i++
		}
	}
	return func(idx int) uint8 {
		if live[idx] {
			return Alive
		}
		return Dead
	}
}

// Factory constructs a pattern for a universe of the given dimensions.
type Factory func(w, h int, seed int64) Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("life: unknown pattern %q (available: %v)", name, Names())
	}
	return f, nil
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("empty", func(int, int, int64) Pattern { return Empty() })
	Register("striped", func(int, int, int64) Pattern { return Striped() })
	Register("random", func(_, _ int, seed int64) Pattern { return Random(seed, 0.5) })
	Register("glider", func(w, h int, _ int64) Pattern { return Glider(w, h, h/2, w/2) })
}
