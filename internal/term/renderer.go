package term

import (
	"fmt"
	"io"

	"github.com/rockbmb/wasm-game-of-life/pkg/life"

	"github.com/pkg/errors"
)

const (
	cellAlive = "██"
	cellDead  = "  "

	// ANSI: cursor home, then clear to end of screen.
	clearScreen = "\x1b[H\x1b[J"
)

// Renderer writes generations of a universe to a terminal.
type Renderer struct {
	out io.Writer
}

// NewRenderer constructs a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Clear resets the terminal before the next frame.
func (r *Renderer) Clear() {
	fmt.Fprint(r.out, clearScreen)
}

// Frame renders one generation through the checked view, with a status line
// underneath. Rendering a view that went stale is an error: the caller must
// not mutate the universe between taking the view and drawing it.
func (r *Renderer) Frame(v life.View, status string) error {
	cells, err := v.Bytes()
	if err != nil {
		return errors.Wrap(err, "[Frame] universe mutated before the frame was drawn")
	}

	w := v.Width()
	for row := 0; row < v.Height(); row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == life.Alive {
				fmt.Fprint(r.out, cellAlive)
			} else {
				fmt.Fprint(r.out, cellDead)
			}
		}
		fmt.Fprintln(r.out)
	}
	if status != "" {
		fmt.Fprintln(r.out, status)
	}
	return nil
}
