package handler

import (
	"io"

	"github.com/philipp01105/tablelog/core"
)

// Built-in flush policies and sinks. These cover the common cases;
// anything else is a one-off closure at the call site.

// FlushAfter returns a FlushFunc that fires once the table holds at
// least n rows.
func FlushAfter(n int) FlushFunc {
	return func(h *TableHandler, _ *core.Record) bool {
		return h.EntryCount() >= n
	}
}

// FlushOnLevel returns a FlushFunc that fires when a record at or
// above min arrives, so the rows buffered before an error ship
// together with it.
func FlushOnLevel(min core.Level) FlushFunc {
	return func(_ *TableHandler, rec *core.Record) bool {
		return rec.Level >= min
	}
}

// FlushAlways returns a FlushFunc that fires on every record,
// degenerating the handler into an unbuffered output.
func FlushAlways() FlushFunc {
	return func(_ *TableHandler, _ *core.Record) bool {
		return true
	}
}

// WriterSink returns a SendFunc that writes each rendered table
// verbatim to w. The writer's lifecycle stays with the caller; the
// handler never closes it.
func WriterSink(w io.Writer) SendFunc {
	return func(rendered string) error {
		_, err := io.WriteString(w, rendered)
		return err
	}
}
