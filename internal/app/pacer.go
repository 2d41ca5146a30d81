package app

import "time"

// Pacer decouples the generation rate from the host's frame rate, so the
// GUI can redraw at display speed while the universe ticks at a steady
// generations-per-second rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the generation rate. It is safe to call from the frame loop.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	p.step = time.Second / time.Duration(tps)
}

// Due reports whether a generation should be advanced this frame.
func (p *Pacer) Due() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
