// Package lens implements the core state and geometry of the zoom lens widget.
//
// A widget displays one image and overlays a movable magnifying lens that
// follows the pointer. This package owns everything that is independent of
// pixels: configuration bounds, pointer tracking, the geometry math that maps
// a pointer position to a source sample window, and the per-instance widget
// state machine. Rendering and encoding live in the render and export
// packages.
//
// # Coordinate System
//
// Two coordinate frames are used throughout:
//   - Display coordinates: pixels as shown on screen. The image may be
//     displayed smaller or larger than its native resolution.
//   - Natural coordinates: pixels in the image's native resolution.
//
// Both frames have their origin at the top-left corner with X increasing
// rightward and Y increasing downward. The geometry engine converts between
// the two using per-axis scale factors, so non-uniform display scaling is
// handled.
//
// # Widget Lifecycle
//
// Widgets are created with a decoded raster and a Config, registered in a
// Registry under a host-supplied key (or a generated one), and then driven
// exclusively through typed input events: Move, Wheel, HoverEnd and
// ExportTrigger. Each event is a pure state transition; there is no
// asynchronous rendering step, so a new event fully supersedes the previous
// one. Replacing a widget's image means replacing the whole widget value in
// the registry, which resets pointer state atomically.
//
// # Bounds
//
// Numeric configuration is clamped, never rejected: lens size to [50, 500]
// pixels and zoom level to [1.0, 20.0]. The download format and lens shape
// are validated at creation time and invalid values are an error.
package lens
