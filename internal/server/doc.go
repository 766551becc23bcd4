// Package server exposes the zoom lens widget to its host over stdio.
//
// The host application embeds the widget visually; this package is the
// contract between the two. It speaks JSON-RPC 2.0, one request per line on
// stdin, one response per line on stdout, so the host can create widget
// instances, stream pointer and wheel events, fetch rendered frames, and
// trigger exports.
//
// Supported methods:
//   - initialize: protocol handshake
//   - describe: enumerate widget methods
//   - widget/create: decode an image source and register a widget instance
//   - widget/event: apply a move, wheel or hover_end event
//   - widget/set_zoom: host-side zoom slider sync (idempotent)
//   - widget/render_frame: current display frame as base64 PNG
//   - widget/export: flattened base+lens artifact in the configured format
//   - widget/destroy, widget/list: instance lifecycle
//   - ping: health check
//
// # Instances
//
// Widgets are registered under a host-supplied key (or a generated UUID) so
// several widgets on one page stay isolated. Re-creating a widget under an
// existing key replaces it wholesale, resetting pointer state atomically
// before the next event is processed.
//
// # Errors
//
// Unknown methods return -32601, malformed params -32602, and execution
// failures -32000. Logging goes to stderr; stdout carries the protocol only.
package server
