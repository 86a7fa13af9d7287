package handler

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/tablelog/core"
	"github.com/philipp01105/tablelog/table"
)

// FlushFunc is evaluated after every handled record and reports
// whether the buffered table should be flushed now. The handler passes
// itself so predicates can inspect EntryCount or the live table.
type FlushFunc func(h *TableHandler, rec *core.Record) bool

// SendFunc delivers one rendered table to its destination. Errors
// propagate unmodified to the caller of Handle, Flush, or Transmit.
type SendFunc func(rendered string) error

// DefaultColumns returns the columns used when none are configured.
func DefaultColumns() []string {
	return []string{"time", "level", "message"}
}

// TableConfig holds configuration for the table handler
type TableConfig struct {
	// Name identifies the handler; it is stored verbatim and never
	// interpreted
	Name string
	// Columns selects and orders the record fields that become table
	// columns (default: time, level, message)
	Columns []string
	// Separator is the literal string between columns (default: " | ")
	Separator string
	// TimestampFormat specifies the time cell format (empty for RFC3339)
	TimestampFormat string
	// SendTo delivers each rendered table (default: write to os.Stdout)
	SendTo SendFunc
	// FlushIf triggers a flush when it returns true (default: never
	// auto-flush)
	FlushIf FlushFunc
}

// TableHandler buffers log records as rows of an in-memory table and
// transmits the rendered table to a sink when the flush predicate
// fires, on an explicit Flush, or finally on Close.
//
// TableHandler is synchronous and not safe for concurrent use; callers
// that share one instance across goroutines must serialize access
// themselves.
type TableHandler struct {
	name     string
	columns  []string
	tsFormat string
	tab      *table.Table
	sendTo   SendFunc
	flushIf  FlushFunc
	closed   bool
}

// NewTableHandler creates a new table handler
func NewTableHandler(cfg TableConfig) *TableHandler {
	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultColumns()
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	if cfg.SendTo == nil {
		cfg.SendTo = WriterSink(os.Stdout)
	}

	tab := table.New(cfg.Columns, cfg.Separator)
	return &TableHandler{
		name:     cfg.Name,
		columns:  tab.Columns(),
		tsFormat: cfg.TimestampFormat,
		tab:      tab,
		sendTo:   cfg.SendTo,
		flushIf:  cfg.FlushIf,
	}
}

// Name returns the configured handler name
func (h *TableHandler) Name() string {
	return h.name
}

// Handle appends the record as one table row, then flushes if the
// configured predicate fires. A record without a timestamp is stamped
// with the current time first. Flush errors propagate to the caller.
func (h *TableHandler) Handle(rec *core.Record) error {
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	row := make([]string, len(h.columns))
	for i, col := range h.columns {
		row[i] = h.cell(rec, col)
	}
	h.tab.Append(row)

	if h.shouldFlush(rec) {
		return h.Flush()
	}
	return nil
}

// cell extracts the value of one column from a record. The fixed
// columns time, level, and message come from the record itself; any
// other column name is looked up in the record's fields, with missing
// fields yielding an empty cell.
func (h *TableHandler) cell(rec *core.Record, col string) string {
	switch col {
	case "time":
		return rec.Time.Format(h.tsFormat)
	case "level":
		return rec.Level.String()
	case "message":
		return rec.Message
	}
	if f, ok := rec.Field(col); ok {
		return f.StringValue()
	}
	return ""
}

// shouldFlush delegates to the configured predicate; no predicate
// means never auto-flush.
func (h *TableHandler) shouldFlush(rec *core.Record) bool {
	if h.flushIf == nil {
		return false
	}
	return h.flushIf(h, rec)
}

// Flush transmits the current table and then drops its rows. A failed
// transmit leaves the rows in place so a later Flush can retry with
// the full table.
func (h *TableHandler) Flush() error {
	if err := h.Transmit(); err != nil {
		return err
	}
	h.tab.Reset()
	return nil
}

// Transmit sends the full current rendering (header plus all buffered
// rows) to the sink without clearing anything. Sink errors propagate
// unmodified; there is no retry.
func (h *TableHandler) Transmit() error {
	return h.sendTo(h.tab.Render())
}

// EntryCount returns the number of buffered data rows
func (h *TableHandler) EntryCount() int {
	return h.tab.Len()
}

// Table returns the live table, not a snapshot: it mutates as further
// records are handled and empties on flush.
func (h *TableHandler) Table() *table.Table {
	return h.tab
}

// CanRecycleRecord returns true if the caller can recycle the record after Handle returns
func (h *TableHandler) CanRecycleRecord() bool {
	return true
}

// Close performs one final best-effort transmission so buffered rows
// are not silently lost. Unlike Flush it never clears the table, and a
// sink error is reported to stderr instead of returned, since teardown
// paths rarely have anywhere to propagate it. Close is idempotent.
func (h *TableHandler) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.Transmit(); err != nil {
		fmt.Fprintf(os.Stderr, "tablelog: final transmission failed: %v\n", err)
	}
	return nil
}
