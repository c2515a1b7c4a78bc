package pavlog

import (
	"errors"
	"fmt"
)

// ErrNilListener is returned by Use when no listener is given.
var ErrNilListener = errors.New("nil listener")

// NameError is returned when a logger name does not match the name grammar.
// No logger is registered when it occurs.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("invalid log name '%s'", e.Name)
}

// LevelError is returned when a listener registration or an emission refers
// to an unknown level.
type LevelError struct {
	Level string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("invalid log level '%s'", e.Level)
}

// InvalidFormatError is returned when the primary argument of an emission is
// neither a string nor an error.
type InvalidFormatError struct {
	Value any
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format: %T", e.Value)
}

// InvalidDetailsError is returned when a details argument is not a mapping
// with string keys.
type InvalidDetailsError struct {
	Value any
}

func (e *InvalidDetailsError) Error() string {
	return fmt.Sprintf("invalid details object: %T", e.Value)
}

// FormatError is returned when a template placeholder names a key that is not
// present in the details.
type FormatError struct {
	Key    string
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s is not defined", e.Key)
}
