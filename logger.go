package pavlog

import (
	"sync"

	"go.uber.org/atomic"
)

// Logger is a named emitter. Events it emits are delivered to its own
// listeners and then bubble up through every ancestor created via Child.
// Loggers are obtained from a Registry and live as long as it does.
type Logger struct {
	name     string
	registry *Registry
	bus      *bus
	parent   atomic.Pointer[Logger]
}

func newLogger(name string, r *Registry) *Logger {
	return &Logger{
		name:     name,
		registry: r,
		bus:      newBus(),
	}
}

// Name returns the fully qualified logger name.
func (l *Logger) Name() string {
	return l.name
}

// Parent returns the logger this one forwards to, or nil.
func (l *Logger) Parent() *Logger {
	return l.parent.Load()
}

// Emit normalizes formatOrErr and details into event data and delivers an
// event at level. formatOrErr must be a template string or an error; every
// details argument must be a mapping with string keys.
func (l *Logger) Emit(level Level, formatOrErr any, details ...any) error {
	if !level.IsValid() {
		return &LevelError{Level: level.String()}
	}
	data, err := formatPayload(formatOrErr, details...)
	if err != nil {
		return err
	}
	return l.bus.emit(Event{Level: level, Name: l.name, Data: data})
}

// Log emits at DefaultLevel.
func (l *Logger) Log(formatOrErr any, details ...any) error {
	return l.Emit(DefaultLevel, formatOrErr, details...)
}

// Fatal emits a fatal event. Unlike most Go loggers it does not exit.
func (l *Logger) Fatal(formatOrErr any, details ...any) error {
	return l.Emit(FatalLevel, formatOrErr, details...)
}

// Error emits an error event.
func (l *Logger) Error(formatOrErr any, details ...any) error {
	return l.Emit(ErrorLevel, formatOrErr, details...)
}

// Warn emits a warn event.
func (l *Logger) Warn(formatOrErr any, details ...any) error {
	return l.Emit(WarnLevel, formatOrErr, details...)
}

// Info emits an info event.
func (l *Logger) Info(formatOrErr any, details ...any) error {
	return l.Emit(InfoLevel, formatOrErr, details...)
}

// Debug emits a debug event.
func (l *Logger) Debug(formatOrErr any, details ...any) error {
	return l.Emit(DebugLevel, formatOrErr, details...)
}

// Trace emits a trace event.
func (l *Logger) Trace(formatOrErr any, details ...any) error {
	return l.Emit(TraceLevel, formatOrErr, details...)
}

// Use registers listener for every event at or above min emitted by l or any
// of its descendants. Registrations are permanent.
func (l *Logger) Use(min Level, listener Listener) error {
	if !min.IsValid() {
		return &LevelError{Level: min.String()}
	}
	if listener == nil {
		return ErrNilListener
	}
	l.bus.subscribe(min, listener)
	return nil
}

// UseFunc is Use for a plain function.
func (l *Logger) UseFunc(min Level, fn func(ev Event) error) error {
	if fn == nil {
		return ErrNilListener
	}
	return l.Use(min, ListenerFunc(fn))
}

var (
	consoleOnce     sync.Once
	consoleListener *ConsoleListener
)

// UseConsole registers the shared human-readable console listener at min,
// or at DefaultLevel when no level is given.
func (l *Logger) UseConsole(min ...Level) error {
	level := DefaultLevel
	if len(min) > 0 {
		level = min[0]
	}
	consoleOnce.Do(func() {
		consoleListener = NewConsoleListener(ConsoleOptions{})
	})
	return l.Use(level, consoleListener)
}

// Child returns the logger named CombineNames(l.Name(), part) from l's
// registry and makes it forward to l. A child that already has a parent keeps
// it.
func (l *Logger) Child(part string) (*Logger, error) {
	child, err := l.registry.Get(CombineNames(l.name, part))
	if err != nil {
		return nil, err
	}
	child.adopt(l)
	return child, nil
}

// MustChild is like Child but panics on an invalid name.
func (l *Logger) MustChild(part string) *Logger {
	child, err := l.Child(part)
	if err != nil {
		panic(err)
	}
	return child
}

func (l *Logger) adopt(parent *Logger) {
	if l == parent {
		return
	}
	if l.bus.forwardTo(parent.bus) {
		l.parent.Store(parent)
	}
}
