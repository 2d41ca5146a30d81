package life

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Cell states as stored in the universe buffer. One byte per cell, so the
// buffer can be handed to a renderer without any transformation.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Universe implements Conway's Game of Life on a toroidal grid. Cells live
// in a flat row-major buffer of length width*height; a second buffer of the
// same size receives each next generation so that no cell ever reads an
// already-updated neighbor, and Tick swaps the two without allocating.
type Universe struct {
	w, h int
	cur  []uint8
	nxt  []uint8

	// gen increments on every mutating call and pins issued Views to the
	// generation they were taken from.
	gen uint64
}

// New allocates a universe and applies the pattern to every cell. A
// zero-area universe is a construction error.
func New(w, h int, p Pattern) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("life: universe must have positive area, got %dx%d", w, h)
	}
	u := &Universe{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
	u.apply(p)
	return u, nil
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells exposes the current generation's buffer without copying. The slice
// is only valid until the next mutating call on the universe; callers that
// need that contract enforced should go through View instead.
func (u *Universe) Cells() []uint8 { return u.cur }

// Index returns the linear buffer index for (row, col).
func (u *Universe) Index(row, col int) int { return row*u.w + col }

// Population returns the number of live cells.
func (u *Universe) Population() int {
	total := 0
	for _, c := range u.cur {
		total += int(c)
	}
	return total
}

// LiveNeighborCount counts live cells among the 8 Moore neighbors of
// (row, col), wrapping toroidally at the grid edges.
func (u *Universe) LiveNeighborCount(row, col int) int {
	w, h := u.w, u.h
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + h) % h
			nc := (col + dc + w) % w
			count += int(u.cur[nr*w+nc])
		}
	}
	return count
}

// NextState applies the birth/survival rule to a single cell: a live cell
// survives with two or three live neighbors, a dead cell is born with
// exactly three, and every other cell is dead in the next generation.
func NextState(alive bool, liveNeighbors int) bool {
	return (alive && liveNeighbors == 2) || liveNeighbors == 3
}

// Tick advances the universe by one generation in place. Next states are
// computed from the current buffer only, then the buffers swap, so callers
// never observe a partially updated generation.
func (u *Universe) Tick() {
	u.checkInvariant()
	w, h := u.w, u.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			u.nxt[idx] = Dead
			if NextState(u.cur[idx] == Alive, u.LiveNeighborCount(row, col)) {
				u.nxt[idx] = Alive
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// Reset reapplies a pattern to every cell in place, without reallocating
// the buffer.
func (u *Universe) Reset(p Pattern) {
	u.apply(p)
}

// apply seeds the current buffer from the pattern in index order. A nil
// pattern leaves every cell dead.
func (u *Universe) apply(p Pattern) {
	for i := range u.cur {
		u.cur[i] = Dead
		if p != nil && p(i) != Dead {
			u.cur[i] = Alive
		}
	}
	u.gen++
}

// Toggle flips the state of a single cell. Coordinates outside the grid are
// a range error and leave the universe untouched.
func (u *Universe) Toggle(row, col int) error {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return errors.Errorf("life: cell (%d,%d) out of range for %dx%d universe", row, col, u.w, u.h)
	}
	u.cur[u.Index(row, col)] ^= 1
	u.gen++
	return nil
}

// SetCells forces the listed (row, col) pairs alive. The universe is left
// untouched if any pair is out of range.
func (u *Universe) SetCells(cells [][2]int) error {
	for _, rc := range cells {
		if rc[0] < 0 || rc[0] >= u.h || rc[1] < 0 || rc[1] >= u.w {
			return errors.Errorf("life: cell (%d,%d) out of range for %dx%d universe", rc[0], rc[1], u.w, u.h)
		}
	}
	for _, rc := range cells {
		u.cur[u.Index(rc[0], rc[1])] = Alive
	}
	u.gen++
	return nil
}

// PlaceGlider stamps a glider over the 3x3 neighborhood centered at
// (row, col), wrapping toroidally at the grid edges.
func (u *Universe) PlaceGlider(row, col int) {
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			nr := wrap(row+dr, u.h)
			nc := wrap(col+dc, u.w)
			u.cur[nr*u.w+nc] = gliderStamp[i]
			i++
		}
	}
	u.gen++
}

// String renders the universe as one text row per grid row, using filled
// squares for live cells and hollow squares for dead ones.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(u.h * (u.w*3 + 1))
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			if u.cur[u.Index(row, col)] == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// checkInvariant panics when a buffer length no longer matches the grid
// dimensions. Only an engine bug can cause that, and continuing would index
// out of bounds.
func (u *Universe) checkInvariant() {
	if len(u.cur) != u.w*u.h || len(u.nxt) != u.w*u.h {
		panic(fmt.Sprintf("life: buffer lengths %d/%d do not match %dx%d universe", len(u.cur), len(u.nxt), u.w, u.h))
	}
}

// wrap applies toroidal wrapping to a single coordinate.
func wrap(v, span int) int {
	return (v%span + span) % span
}
