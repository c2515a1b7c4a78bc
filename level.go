package pavlog

import (
	"strconv"

	"github.com/rs/zerolog"
)

// Level is the severity of an event. Levels share zerolog's numeric values so
// rendering listeners can hand them straight to a zerolog.Logger.
type Level int8

const (
	TraceLevel = Level(zerolog.TraceLevel)
	DebugLevel = Level(zerolog.DebugLevel)
	InfoLevel  = Level(zerolog.InfoLevel)
	WarnLevel  = Level(zerolog.WarnLevel)
	ErrorLevel = Level(zerolog.ErrorLevel)
	FatalLevel = Level(zerolog.FatalLevel)
)

// DefaultLevel is used when a logger is called without naming a level.
const DefaultLevel = InfoLevel

// levels is ordered most to least severe.
var levels = [...]Level{FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}

// Levels returns every known level, most severe first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// IsValid reports whether l is one of the six known levels.
func (l Level) IsValid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

func (l Level) String() string {
	if !l.IsValid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return zerolog.Level(l).String()
}

// zerolog returns the equivalent zerolog level.
func (l Level) zerolog() zerolog.Level {
	return zerolog.Level(l)
}

// ParseLevel parses one of "fatal", "error", "warn", "info", "debug" or
// "trace". Anything else, including zerolog's numeric and "panic" forms,
// returns a *LevelError.
func ParseLevel(s string) (Level, error) {
	zl, err := zerolog.ParseLevel(s)
	if err != nil {
		return 0, &LevelError{Level: s}
	}
	l := Level(zl)
	if !l.IsValid() || l.String() != s {
		return 0, &LevelError{Level: s}
	}
	return l, nil
}

// IsValidLevel reports whether s names a known level.
func IsValidLevel(s string) bool {
	_, err := ParseLevel(s)
	return err == nil
}

// CompareLevels returns 1 if a is more severe than b, 0 if they are equal and
// -1 if a is less severe. An event at level a satisfies a listener threshold b
// iff CompareLevels(a, b) >= 0.
func CompareLevels(a, b Level) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// isErrorStreamLevel reports whether rendering listeners route l to the error
// stream.
func isErrorStreamLevel(l Level) bool {
	return l >= WarnLevel
}
