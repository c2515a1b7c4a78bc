package pavlog

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	placeholderStart = "{"
	placeholderEnd   = "}"
)

// Fields is the key/value mapping carried by an event and accepted as
// emission details.
type Fields map[string]any

// formatPayload normalizes the arguments of an emission into event data.
// A string is rendered as a template against the merged details, an error is
// expanded into err/message/stack. Every details key is copied into the
// result; the keys written by the engine win over caller keys.
func formatPayload(formatOrErr any, details ...any) (Fields, error) {
	merged, err := mergeDetails(details)
	if err != nil {
		return nil, err
	}

	data := make(Fields, len(merged)+3)
	for k, v := range merged {
		data[k] = v
	}

	switch v := formatOrErr.(type) {
	case string:
		msg, err := renderTemplate(v, merged)
		if err != nil {
			return nil, err
		}
		data[KeyFormat] = v
		data[KeyMessage] = msg
	case error:
		data[KeyErr] = v
		data[KeyMessage] = v.Error()
		data[KeyStack] = errorStack(v)
	default:
		return nil, &InvalidFormatError{Value: formatOrErr}
	}

	return data, nil
}

// mergeDetails flattens the details arguments into one mapping, later
// arguments overriding earlier ones. Nil arguments are skipped.
func mergeDetails(details []any) (Fields, error) {
	if len(details) == 0 {
		return nil, nil
	}

	out := make(Fields)
	for _, d := range details {
		switch m := d.(type) {
		case nil:
			continue
		case Fields:
			for k, v := range m {
				out[k] = v
			}
		case map[string]any:
			for k, v := range m {
				out[k] = v
			}
		case map[string]string:
			for k, v := range m {
				out[k] = v
			}
		default:
			rv := reflect.ValueOf(d)
			if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
				return nil, &InvalidDetailsError{Value: d}
			}
			iter := rv.MapRange()
			for iter.Next() {
				out[iter.Key().String()] = iter.Value().Interface()
			}
		}
	}
	return out, nil
}

// renderTemplate replaces every {key} placeholder in format with the
// stringified details value. Whitespace inside the braces is ignored. Empty
// braces and an unterminated '{' are kept verbatim.
func renderTemplate(format string, details Fields) (string, error) {
	return fasttemplate.ExecuteFuncStringWithErr(format, placeholderStart, placeholderEnd,
		func(w io.Writer, tag string) (int, error) {
			key := strings.TrimSpace(tag)
			if key == emptyString {
				return io.WriteString(w, placeholderStart+tag+placeholderEnd)
			}
			v, ok := details[key]
			if !ok {
				return 0, &FormatError{Key: key, Format: format}
			}
			return io.WriteString(w, stringify(v))
		})
}

func stringify(v any) string {
	if v == nil {
		return emptyString
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
