package handler

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/tablelog/core"
)

func newTestTableHandler(columns ...string) (*TableHandler, *sinkRecorder) {
	sink := &sinkRecorder{}
	h := NewTableHandler(TableConfig{
		Columns: columns,
		SendTo:  sink.send,
	})
	return h, sink
}

func TestSlogHandler_Enabled(t *testing.T) {
	h, _ := newTestTableHandler("level", "message")
	sh := NewSlogHandler(h, core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	h, _ := newTestTableHandler("level", "message", "key", "count")
	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh)

	logger.Info("test message", "key", "value", "count", 42)

	if h.EntryCount() != 1 {
		t.Fatalf("EntryCount() = %d, want 1", h.EntryCount())
	}
	row := h.Table().Rows()[0]
	want := []string{"INFO", "test message", "value", "42"}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("row[%d] = %q, want %q", i, row[i], cell)
		}
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	h, _ := newTestTableHandler("message", "request_id")
	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh).With("request_id", "req-123")

	logger.Info("test message")

	row := h.Table().Rows()[0]
	if row[1] != "req-123" {
		t.Errorf("request_id cell = %q, want %q", row[1], "req-123")
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	h, _ := newTestTableHandler("message", "auth.user_id")
	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh).WithGroup("auth")

	logger.Info("test message", "user_id", 123)

	row := h.Table().Rows()[0]
	if row[1] != "123" {
		t.Errorf("auth.user_id cell = %q, want %q", row[1], "123")
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	h, _ := newTestTableHandler("level", "message")
	sh := NewSlogHandler(h, core.InfoLevel)
	logger := slog.New(sh)

	logger.Debug("should not appear")
	if h.EntryCount() != 0 {
		t.Error("Debug message should not have been buffered")
	}

	logger.Info("should appear")
	if h.EntryCount() != 1 {
		t.Fatal("Info message should have been buffered")
	}
	if !strings.Contains(h.Table().Render(), "should appear") {
		t.Errorf("Expected 'should appear' in table, got: %s", h.Table().Render())
	}
}

func TestSlogHandler_AutoFlush(t *testing.T) {
	sink := &sinkRecorder{}
	h := NewTableHandler(TableConfig{
		Columns: []string{"level", "message"},
		SendTo:  sink.send,
		FlushIf: FlushAfter(2),
	})
	logger := slog.New(NewSlogHandler(h, core.DebugLevel))

	logger.Info("one")
	logger.Info("two")

	if len(sink.sends) != 1 {
		t.Fatalf("expected 1 transmission, got %d", len(sink.sends))
	}
	if !strings.Contains(sink.sends[0], "one") || !strings.Contains(sink.sends[0], "two") {
		t.Errorf("transmission missing rows: %s", sink.sends[0])
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
