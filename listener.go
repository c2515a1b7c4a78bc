package pavlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// streams holds one zerolog logger per output stream. fatal, error and warn
// events go to the error stream, everything else to the output stream.
const (
	jsonNameKey       = "name"
	jsonDataKey       = "data"
	consoleDataPrefix = "data."
)

type streams struct {
	out zerolog.Logger
	err zerolog.Logger
}

func (s *streams) forLevel(l Level) *zerolog.Logger {
	if isErrorStreamLevel(l) {
		return &s.err
	}
	return &s.out
}

// eventFields copies ev.Data without the keys in skip. zerolog only accepts a
// plain map[string]interface{}.
func eventFields(ev Event, skip ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(ev.Data))
	for k, v := range ev.Data {
		out[k] = v
	}
	for _, k := range skip {
		delete(out, k)
	}
	return out
}

// ConsoleOptions configures a ConsoleListener. Nil writers default to
// os.Stdout and os.Stderr.
type ConsoleOptions struct {
	Out           io.Writer
	Err           io.Writer
	NoColor       bool
	WithTimestamp bool
}

// ConsoleListener renders events for humans through zerolog's ConsoleWriter
// as "name:level message" followed by the remaining data fields. The root
// logger's events carry the bare level.
type ConsoleListener struct {
	streams
}

func NewConsoleListener(opts ConsoleOptions) *ConsoleListener {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	newLogger := func(w io.Writer) zerolog.Logger {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: opts.NoColor, PartsExclude: []string{zerolog.LevelFieldName}}
		if !opts.WithTimestamp {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.TimestampFieldName)
			return zerolog.New(cw)
		}
		return zerolog.New(cw).With().Timestamp().Logger()
	}

	return &ConsoleListener{streams{out: newLogger(opts.Out), err: newLogger(opts.Err)}}
}

func (c *ConsoleListener) Handle(ev Event) error {
	fields := eventFields(ev, KeyMessage, KeyFormat)
	// Caller keys must not shadow the parts ConsoleWriter reads back.
	for _, k := range []string{zerolog.LevelFieldName, zerolog.MessageFieldName, zerolog.TimestampFieldName} {
		if v, ok := fields[k]; ok {
			delete(fields, k)
			fields[consoleDataPrefix+k] = v
		}
	}

	c.forLevel(ev.Level).WithLevel(ev.Level.zerolog()).
		Fields(fields).
		Msg(consoleNamespace(ev) + " " + ev.Message())
	return nil
}

func consoleNamespace(ev Event) string {
	if ev.Name == emptyString {
		return ev.Level.String()
	}
	return ev.Name + ":" + ev.Level.String()
}

// JSONListener writes one JSON object per event: level, name and the event
// data nested under "data", so caller keys never collide with the envelope.
type JSONListener struct {
	streams
}

// NewJSONListener writes to out and errOut. Nil writers default to os.Stdout
// and os.Stderr.
func NewJSONListener(out, errOut io.Writer) *JSONListener {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &JSONListener{streams{out: zerolog.New(out), err: zerolog.New(errOut)}}
}

func (j *JSONListener) Handle(ev Event) error {
	j.forLevel(ev.Level).WithLevel(ev.Level.zerolog()).
		Str(jsonNameKey, ev.Name).
		Dict(jsonDataKey, zerolog.Dict().Fields(eventFields(ev))).
		Send()
	return nil
}
