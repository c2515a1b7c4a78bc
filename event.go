package pavlog

import (
	"time"
)

// Event is what listeners receive. Data always holds KeyMessage; KeyFormat
// is present for template emissions and KeyErr/KeyStack for error emissions.
// Listeners must treat an Event as read-only.
type Event struct {
	Level Level
	Name  string
	Data  Fields
}

// Message returns Data[KeyMessage] as a string.
func (e Event) Message() string {
	s, _ := e.Data[KeyMessage].(string)
	return s
}

// Err returns the error of an error-form event, or nil.
func (e Event) Err() error {
	err, _ := e.Data[KeyErr].(error)
	return err
}

// EventBuilder collects typed details before a template emission.
// Example: log.InfoWith().Str("user", id).Int("count", 5).Msg("processed {user}")
type EventBuilder struct {
	emitter Emitter
	level   Level
	fields  Fields
	err     error
}

func newEventBuilder(e Emitter, level Level) *EventBuilder {
	return &EventBuilder{emitter: e, level: level, fields: make(Fields)}
}

// FatalWith starts a fatal event builder.
func (l *Logger) FatalWith() *EventBuilder { return newEventBuilder(l, FatalLevel) }

// ErrorWith starts an error event builder.
func (l *Logger) ErrorWith() *EventBuilder { return newEventBuilder(l, ErrorLevel) }

// WarnWith starts a warn event builder.
func (l *Logger) WarnWith() *EventBuilder { return newEventBuilder(l, WarnLevel) }

// InfoWith starts an info event builder.
func (l *Logger) InfoWith() *EventBuilder { return newEventBuilder(l, InfoLevel) }

// DebugWith starts a debug event builder.
func (l *Logger) DebugWith() *EventBuilder { return newEventBuilder(l, DebugLevel) }

// TraceWith starts a trace event builder.
func (l *Logger) TraceWith() *EventBuilder { return newEventBuilder(l, TraceLevel) }

// With returns a builder for an arbitrary level.
func (l *Logger) With(level Level) *EventBuilder { return newEventBuilder(l, level) }

// Str adds a string field.
func (b *EventBuilder) Str(key, val string) *EventBuilder {
	b.fields[key] = val
	return b
}

// Strs adds a string slice field.
func (b *EventBuilder) Strs(key string, vals []string) *EventBuilder {
	b.fields[key] = vals
	return b
}

// Int adds an int field.
func (b *EventBuilder) Int(key string, val int) *EventBuilder {
	b.fields[key] = val
	return b
}

// Int64 adds an int64 field.
func (b *EventBuilder) Int64(key string, val int64) *EventBuilder {
	b.fields[key] = val
	return b
}

// Uint64 adds a uint64 field.
func (b *EventBuilder) Uint64(key string, val uint64) *EventBuilder {
	b.fields[key] = val
	return b
}

// Float64 adds a float64 field.
func (b *EventBuilder) Float64(key string, val float64) *EventBuilder {
	b.fields[key] = val
	return b
}

// Bool adds a bool field.
func (b *EventBuilder) Bool(key string, val bool) *EventBuilder {
	b.fields[key] = val
	return b
}

// Time adds a time.Time field.
func (b *EventBuilder) Time(key string, val time.Time) *EventBuilder {
	b.fields[key] = val
	return b
}

// Dur adds a time.Duration field.
func (b *EventBuilder) Dur(key string, val time.Duration) *EventBuilder {
	b.fields[key] = val
	return b
}

// AnErr stores err under key. A nil err is skipped.
func (b *EventBuilder) AnErr(key string, err error) *EventBuilder {
	if err != nil {
		b.fields[key] = err
	}
	return b
}

// Err sets the error sent by Send. Msg stores it under "error" instead.
func (b *EventBuilder) Err(err error) *EventBuilder {
	b.err = err
	return b
}

// Interface adds a field of any type.
func (b *EventBuilder) Interface(key string, val any) *EventBuilder {
	b.fields[key] = val
	return b
}

// Fields merges every entry of f.
func (b *EventBuilder) Fields(f Fields) *EventBuilder {
	for k, v := range f {
		b.fields[k] = v
	}
	return b
}

// Msg emits a template event rendered against the collected fields.
func (b *EventBuilder) Msg(format string) error {
	if b.err != nil {
		b.fields["error"] = b.err
	}
	return b.emitter.Emit(b.level, format, b.fields)
}

// Send emits an error event for the error set with Err, carrying the
// collected fields. Without an error it returns an *InvalidFormatError.
func (b *EventBuilder) Send() error {
	if b.err == nil {
		return &InvalidFormatError{Value: nil}
	}
	return b.emitter.Emit(b.level, b.err, b.fields)
}
