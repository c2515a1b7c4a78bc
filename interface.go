package pavlog

// Listener receives the events a logger delivers. Handle must not mutate the
// event. A non-nil error aborts the emission and is returned to its caller.
type Listener interface {
	Handle(ev Event) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Event) error

func (f ListenerFunc) Handle(ev Event) error {
	return f(ev)
}

// Emitter is the emission half of a Logger.
type Emitter interface {
	Emit(level Level, formatOrErr any, details ...any) error

	Fatal(formatOrErr any, details ...any) error
	Error(formatOrErr any, details ...any) error
	Warn(formatOrErr any, details ...any) error
	Info(formatOrErr any, details ...any) error
	Debug(formatOrErr any, details ...any) error
	Trace(formatOrErr any, details ...any) error
}

var _ Emitter = (*Logger)(nil)
