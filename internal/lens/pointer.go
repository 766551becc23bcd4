package lens

// PointerState tracks the pointer over the image's display area. It is
// transient: recomputed on every move event and never persisted.
type PointerState struct {
	// Pos is the last pointer position in display coordinates, clamped to
	// the display bounds.
	Pos Point

	// Hovering reports whether the lens is currently visible.
	Hovering bool

	// recorded is true once any position has been seen. Exports triggered
	// before that fall back to the image center.
	recorded bool
}

// move clamps the position to [0, displayW) x [0, displayH) and records it.
// It returns true when this transition made the pointer enter the image
// (hover begin). Edge contact keeps the lens visible; only an explicit
// HoverEnd hides it.
func (p *PointerState) move(x, y float64, displayW, displayH int) bool {
	p.Pos = Point{
		X: clampFloat(x, 0, float64(displayW-1)),
		Y: clampFloat(y, 0, float64(displayH-1)),
	}
	p.recorded = true
	began := !p.Hovering
	p.Hovering = true
	return began
}

// end hides the lens, keeping the last recorded position.
func (p *PointerState) end() bool {
	was := p.Hovering
	p.Hovering = false
	return was
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
