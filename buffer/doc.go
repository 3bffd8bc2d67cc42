// Package buffer implements the pure document model for mono.
//
// The document is a single plain-text string addressed by flat, 0-based
// grapheme offsets. Ranges are half-open: [Start, End). Row/column positions
// are derived on demand for line-oriented movement and rendering.
package buffer
