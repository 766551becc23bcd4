// Package raster resolves the host-supplied image input into a single
// canonical raster.
//
// Hosts may hand the widget an image in three unrelated shapes: a URL (web
// URL or data URL), an encoded byte buffer (PNG, JPEG or GIF), or a raw
// pixel buffer with shape (H, W, 3) or (H, W, 4). The Source variant type
// captures exactly one of these and Resolve turns it into an *image.NRGBA
// with known dimensions. Everything downstream of this package works on the
// decoded raster only and never branches on the original input shape.
package raster
