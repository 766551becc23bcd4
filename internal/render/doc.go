// Package render draws the lens overlay and composites display frames.
//
// The renderer is stateless: every call recomputes the lens from the current
// geometry, so a new pointer event fully supersedes the previous frame. The
// lens is rendered into a transparent layer the size of the display frame —
// the magnified sample window scaled to the lens bounding square, clipped to
// a circle (or left square), plus a border stroke — and then composited over
// the base image. Work is proportional to the lens area, not the image size.
package render
