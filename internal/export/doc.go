// Package export flattens a widget's base image and lens overlay into one
// downloadable raster.
//
// Unlike the live display frame, the export pass works entirely in
// natural-pixel space: the output raster is the image at native resolution
// and the lens geometry is recomputed with the native size acting as both
// display and natural size, so the exported lens shows native detail rather
// than the on-screen scaled view. The pointer position and lens diameter are
// scaled proportionally from display to natural coordinates.
package export
