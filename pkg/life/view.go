package life

import "github.com/pkg/errors"

// View is a read-only window over a universe's cell buffer. It is pinned to
// the generation it was issued for: once any mutating call lands on the
// universe, Bytes reports a stale-view error instead of exposing data from
// a different generation.
type View struct {
	u   *Universe
	gen uint64
}

// View issues a view over the current generation.
func (u *Universe) View() View {
	return View{u: u, gen: u.gen}
}

// Width returns the number of columns of the viewed universe.
func (v View) Width() int { return v.u.w }

// Height returns the number of rows of the viewed universe.
func (v View) Height() int { return v.u.h }

// Stale reports whether the universe has mutated since the view was issued.
func (v View) Stale() bool {
	return v.u == nil || v.gen != v.u.gen
}

// Bytes returns the cell buffer without copying: one byte per cell, 0 dead
// and 1 alive, in row-major order. It fails if the universe has mutated
// since the view was issued.
func (v View) Bytes() ([]uint8, error) {
	if v.u == nil {
		return nil, errors.New("life: view does not reference a universe")
	}
	if v.gen != v.u.gen {
		return nil, errors.Errorf("life: stale view: universe mutated %d time(s) since the view was issued", v.u.gen-v.gen)
	}
	v.u.checkInvariant()
	return v.u.cur, nil
}
