package handler

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tablelog/core"
)

// ZapCore is an adapter that implements zapcore.Core on top of a
// Handler, letting a zap.Logger dispatch into a tablelog output.
//
// Sync flushes the wrapped handler when it implements Flusher, so
// zap.Logger.Sync drains the buffered table.
type ZapCore struct {
	zapcore.LevelEnabler
	handler Handler
	fields  []core.Field
	recycle bool
}

// NewZapCore creates a zapcore.Core adapter wrapping the given Handler.
// The enabler carries zap's minimum-severity gate, e.g. zapcore.InfoLevel.
func NewZapCore(h Handler, enab zapcore.LevelEnabler) *ZapCore {
	c := &ZapCore{
		LevelEnabler: enab,
		handler:      h,
	}
	if rc, ok := h.(interface{ CanRecycleRecord() bool }); ok {
		c.recycle = rc.CanRecycleRecord()
	}
	return c
}

// With returns a copy of the core carrying the additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		recycle:      c.recycle,
	}
	clone.fields = make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(clone.fields, c.fields)
	clone.fields = append(clone.fields, convertZapFields(fields)...)
	return clone
}

// Check adds this core to the checked entry when its level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry to a core.Record and passes it to the
// wrapped handler.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := core.GetRecord()
	rec.Time = ent.Time
	rec.Level = zapLevelToCore(ent.Level)
	rec.Message = ent.Message

	if len(c.fields) > 0 {
		rec.Fields = append(rec.Fields, c.fields...)
	}
	rec.Fields = append(rec.Fields, convertZapFields(fields)...)

	err := c.handler.Handle(rec)
	if c.recycle {
		core.PutRecord(rec)
	}
	return err
}

// Sync flushes the wrapped handler if it buffers.
func (c *ZapCore) Sync() error {
	if f, ok := c.handler.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// convertZapFields resolves zap's encoded field representation into
// core.Field values, preserving the caller's field order.
func convertZapFields(fields []zapcore.Field) []core.Field {
	if len(fields) == 0 {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	out := make([]core.Field, 0, len(fields))
	for _, f := range fields {
		val, ok := enc.Fields[f.Key]
		if !ok {
			// Fields following a Namespace nest under it and are
			// already captured by the namespace key's map value.
			continue
		}
		out = append(out, convertZapValue(f.Key, val))
	}
	return out
}

// convertZapValue maps one decoded zap field value to a core.Field.
func convertZapValue(key string, val interface{}) core.Field {
	switch v := val.(type) {
	case string:
		return core.String(key, v)
	case int:
		return core.Int(key, v)
	case int64:
		return core.Int64(key, v)
	case float64:
		return core.Float64(key, v)
	case bool:
		return core.Bool(key, v)
	case time.Time:
		return core.Time(key, v)
	case time.Duration:
		return core.Duration(key, v)
	case error:
		return core.Field{Key: key, Type: core.ErrorType, Str: v.Error()}
	default:
		return core.Any(key, v)
	}
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch level {
	case zapcore.DebugLevel:
		return core.DebugLevel
	case zapcore.InfoLevel:
		return core.InfoLevel
	case zapcore.WarnLevel:
		return core.WarnLevel
	case zapcore.ErrorLevel:
		return core.ErrorLevel
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		return core.PanicLevel
	case zapcore.FatalLevel:
		return core.FatalLevel
	default:
		return core.InfoLevel
	}
}
