package table

import (
	"bytes"
	"io"
	"sync"
)

// DefaultSeparator is the column separator used when none is configured.
const DefaultSeparator = " | "

// Table is an ordered, growable grid of text cells under a fixed header.
// The header and separator are set at construction and never change;
// rows accumulate via Append and are dropped by Reset.
//
// Table is not safe for concurrent use.
type Table struct {
	columns []string
	sep     string
	rows    [][]string
}

// New creates a Table with the given header columns and separator.
// An empty separator selects DefaultSeparator.
func New(columns []string, separator string) *Table {
	if separator == "" {
		separator = DefaultSeparator
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		columns: cols,
		sep:     separator,
	}
}

// Columns returns a copy of the header columns.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Separator returns the configured column separator.
func (t *Table) Separator() string {
	return t.sep
}

// Append adds one data row. The row is copied and padded or truncated
// to the column count, so short rows render as empty trailing cells.
func (t *Table) Append(row []string) {
	cells := make([]string, len(t.columns))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Len returns the number of data rows (the header is not counted).
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the live row slice, not a snapshot. It mutates as
// further rows are appended and empties on Reset.
func (t *Table) Rows() [][]string {
	return t.rows
}

// Reset drops all data rows. The header is untouched.
func (t *Table) Reset() {
	t.rows = t.rows[:0]
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Render returns the aligned textual grid: the header line followed by
// one line per row. Cells are left-aligned and padded with spaces to
// the widest value in their column; the last column is never padded,
// so lines carry no trailing whitespace. Every line ends with '\n'.
func (t *Table) Render() string {
	buf := getBuffer()
	defer putBuffer(buf)

	t.renderToBuffer(buf)
	return buf.String()
}

// RenderTo renders the grid directly to the writer, avoiding the
// intermediate string allocation of Render.
func (t *Table) RenderTo(w io.Writer) error {
	buf := getBuffer()

	t.renderToBuffer(buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// renderToBuffer writes the grid into the given buffer
func (t *Table) renderToBuffer(buf *bytes.Buffer) {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	t.writeLine(buf, t.columns, widths)
	for _, row := range t.rows {
		t.writeLine(buf, row, widths)
	}
}

const padding = "                                                                "

func (t *Table) writeLine(buf *bytes.Buffer, cells []string, widths []int) {
	last := len(cells) - 1
	for i, cell := range cells {
		if i > 0 {
			buf.WriteString(t.sep)
		}
		buf.WriteString(cell)
		if i < last {
			writePad(buf, widths[i]-len(cell))
		}
	}
	buf.WriteByte('\n')
}

func writePad(buf *bytes.Buffer, n int) {
	for n > len(padding) {
		buf.WriteString(padding)
		n -= len(padding)
	}
	if n > 0 {
		buf.WriteString(padding[:n])
	}
}
