//go:build js && wasm

package main

import (
	"syscall/js"
	"unsafe"

	"github.com/rockbmb/wasm-game-of-life/pkg/life"

	"github.com/pkg/errors"
)

// bridge owns the universe exposed to the JavaScript host. Every exported
// call runs to completion on the JS event-loop thread, which matches the
// engine's single-threaded synchronous model: no call ever observes a
// partially advanced generation.
type bridge struct {
	uni *life.Universe
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// newUniverse constructs the universe: newUniverse(width, height, pattern, seed).
func (b *bridge) newUniverse(_ js.Value, args []js.Value) any {
	if len(args) < 4 {
		return jsError(errors.New("newUniverse expects (width, height, pattern, seed)"))
	}
	factory, err := life.Lookup(args[2].String())
	if err != nil {
		return jsError(err)
	}
	w, h := args[0].Int(), args[1].Int()
	uni, err := life.New(w, h, factory(w, h, int64(args[3].Int())))
	if err != nil {
		return jsError(err)
	}
	b.uni = uni
	return js.Null()
}

func (b *bridge) width(js.Value, []js.Value) any  { return b.uni.Width() }
func (b *bridge) height(js.Value, []js.Value) any { return b.uni.Height() }

func (b *bridge) tick(js.Value, []js.Value) any {
	b.uni.Tick()
	return js.Null()
}

// toggle flips a single cell: toggle(row, col). Out-of-range coordinates
// return an Error and leave the universe untouched.
func (b *bridge) toggle(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return jsError(errors.New("toggle expects (row, col)"))
	}
	if err := b.uni.Toggle(args[0].Int(), args[1].Int()); err != nil {
		return jsError(err)
	}
	return js.Null()
}

// reset reseeds the universe in place: reset(pattern, seed).
func (b *bridge) reset(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return jsError(errors.New("reset expects (pattern, seed)"))
	}
	factory, err := life.Lookup(args[0].String())
	if err != nil {
		return jsError(err)
	}
	b.uni.Reset(factory(b.uni.Width(), b.uni.Height(), int64(args[1].Int())))
	return js.Null()
}

// placeGlider stamps a glider centered at (row, col).
func (b *bridge) placeGlider(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return jsError(errors.New("placeGlider expects (row, col)"))
	}
	b.uni.PlaceGlider(args[0].Int(), args[1].Int())
	return js.Null()
}

// cellsView returns {ptr, len}: the raster's address and length in wasm
// linear memory, one byte per cell in row-major order. The host reads it
// directly as an ImageData source and must finish before the next mutating
// call; ptr is only valid for the current generation.
func (b *bridge) cellsView(js.Value, []js.Value) any {
	cells, err := b.uni.View().Bytes()
	if err != nil {
		return jsError(err)
	}
	view := js.Global().Get("Object").New()
	view.Set("ptr", int(uintptr(unsafe.Pointer(&cells[0]))))
	view.Set("len", len(cells))
	return view
}

// copyCells copies the raster into the provided Uint8Array and returns the
// number of bytes copied. Slower than cellsView, but safe to hold across
// ticks.
func (b *bridge) copyCells(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return jsError(errors.New("copyCells expects a Uint8Array destination"))
	}
	return js.CopyBytesToJS(args[0], b.uni.Cells())
}

func (b *bridge) population(js.Value, []js.Value) any { return b.uni.Population() }

// render returns the text raster, for debugging without a canvas.
func (b *bridge) render(js.Value, []js.Value) any { return b.uni.String() }

// guarded rejects calls made before newUniverse.
func (b *bridge) guarded(fn func(js.Value, []js.Value) any) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		if b.uni == nil {
			return jsError(errors.New("no universe: call newUniverse first"))
		}
		return fn(this, args)
	})
}

func (b *bridge) register() {
	api := js.Global().Get("Object").New()
	api.Set("newUniverse", js.FuncOf(b.newUniverse))
	api.Set("patterns", js.FuncOf(func(js.Value, []js.Value) any {
		names := life.Names()
		arr := js.Global().Get("Array").New(len(names))
		for i, name := range names {
			arr.SetIndex(i, name)
		}
		return arr
	}))
	api.Set("width", b.guarded(b.width))
	api.Set("height", b.guarded(b.height))
	api.Set("tick", b.guarded(b.tick))
	api.Set("toggle", b.guarded(b.toggle))
	api.Set("reset", b.guarded(b.reset))
	api.Set("placeGlider", b.guarded(b.placeGlider))
	api.Set("cellsView", b.guarded(b.cellsView))
	api.Set("copyCells", b.guarded(b.copyCells))
	api.Set("population", b.guarded(b.population))
	api.Set("render", b.guarded(b.render))
	js.Global().Set("gameOfLife", api)
}

func main() {
	b := &bridge{}
	b.register()

	// Block forever: the exported functions are the program. Returning from
	// main would tear down the Go runtime under the host's feet.
	select {}
}
