// Package handler provides the Handler interface and the TableHandler,
// an output that buffers log records as rows of an in-memory table.
//
// TableHandler appends one row per handled record, with cells selected
// by the configured column list (time, level, and message come from the
// record itself, any other name from the record's fields). After each
// row it evaluates an optional FlushFunc; when the predicate fires, the
// table is rendered as an aligned text grid, handed to the configured
// SendFunc, and cleared. Without a predicate the table only drains on
// an explicit Flush or on Close, which performs one final transmission
// without clearing so buffered rows are never silently lost.
//
// Transmit sends without clearing; Flush is transmit-then-clear, and a
// failed transmit keeps the rows so a later Flush retries the full
// table. Sink errors propagate to the logging call that triggered
// them, except during Close, where they are reported to stderr.
//
// TableHandler is synchronous and single-threaded on purpose. It does
// no internal locking and assumes one logical caller, normally the
// dispatch path of the logging front feeding it.
//
// Two dispatch adapters are included:
//
//   - SlogHandler implements log/slog.Handler over any Handler.
//   - ZapCore implements zapcore.Core over any Handler, with Sync
//     flushing handlers that implement Flusher.
package handler
