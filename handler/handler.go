package handler

import (
	"github.com/philipp01105/tablelog/core"
)

// Handler defines the interface for log output handlers
type Handler interface {
	// Handle processes a log record
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// Flusher is an optional interface for handlers that buffer records
// and can transmit the buffered data on demand.
type Flusher interface {
	Flush() error
}
