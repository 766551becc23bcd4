package lens

// Event is one typed input consumed by a widget. The widget processes events
// strictly in arrival order; each event is a pure state transition and fully
// supersedes the previous one.
type Event interface {
	isEvent()
}

// Move reports a pointer position over the image's display area, relative to
// its top-left corner. Positions outside the display bounds are clamped.
type Move struct {
	X float64
	Y float64
}

// Wheel reports one wheel tick. Positive Delta zooms in, negative zooms out.
// The magnitude is ignored; each event is one step of Style.WheelStep.
type Wheel struct {
	Delta float64
}

// HoverEnd reports that the pointer left the image entirely. The lens hides
// but the last position is retained for export.
type HoverEnd struct{}

// ExportTrigger requests a composite export at the current (frozen) pointer
// position.
type ExportTrigger struct{}

func (Move) isEvent()          {}
func (Wheel) isEvent()         {}
func (HoverEnd) isEvent()      {}
func (ExportTrigger) isEvent() {}

// Update is the observable outcome of applying one event.
type Update struct {
	// HoverBegan is set when a Move event made the lens visible.
	HoverBegan bool

	// HoverEnded is set when a HoverEnd event hid the lens.
	HoverEnded bool

	// Hovering is the lens visibility after the event.
	Hovering bool

	// ZoomLevel is the effective zoom after the event. Hosts mirroring the
	// zoom in their own controls can re-send this value safely; setting the
	// current zoom again is a no-op.
	ZoomLevel float64

	// Export carries the frozen export request for ExportTrigger events and
	// is nil otherwise.
	Export *ExportRequest
}
