// Package table implements the in-memory tabular buffer that backs the
// table output handler.
//
// A Table holds a fixed header and a growable list of text rows.
// Rendering produces a plain aligned grid: every cell is padded with
// spaces to the widest value in its column and columns are joined by a
// literal separator string (" | " by default). There is no box drawing
// and no color, so the output is safe for log files and pipes.
//
// Rendering goes through a pooled bytes.Buffer. RenderTo writes the
// grid straight to an io.Writer and skips the string allocation that
// Render pays. Buffers larger than 64 KiB are not returned to the pool
// to prevent a single large table from permanently inflating memory
// usage.
package table
