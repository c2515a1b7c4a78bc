package pavlog

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPayload_Template(t *testing.T) {
	t.Run("placeholders are substituted and details kept", func(t *testing.T) {
		data, err := formatPayload("one {two} three { four } five", Fields{"two": 2, "four": "FOUR"})
		require.NoError(t, err)
		assert.Equal(t, Fields{
			KeyFormat:  "one {two} three { four } five",
			KeyMessage: "one 2 three FOUR five",
			"two":      2,
			"four":     "FOUR",
		}, data)
	})

	t.Run("unused details are merged", func(t *testing.T) {
		data, err := formatPayload("foobar", Fields{"test": "data"})
		require.NoError(t, err)
		assert.Equal(t, Fields{KeyFormat: "foobar", KeyMessage: "foobar", "test": "data"}, data)
	})

	t.Run("no details", func(t *testing.T) {
		data, err := formatPayload("plain")
		require.NoError(t, err)
		assert.Equal(t, Fields{KeyFormat: "plain", KeyMessage: "plain"}, data)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := formatPayload("one {two} three {four} five", Fields{"two": 2})
		var fe *FormatError
		require.True(t, errors.As(err, &fe), "got %v", err)
		assert.Equal(t, "four", fe.Key)
		assert.Equal(t, "four is not defined", fe.Error())
	})

	t.Run("missing key without details", func(t *testing.T) {
		_, err := formatPayload("hello {name}")
		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "name", fe.Key)
	})

	t.Run("nil renders empty", func(t *testing.T) {
		data, err := formatPayload("[{v}]", Fields{"v": nil})
		require.NoError(t, err)
		assert.Equal(t, "[]", data[KeyMessage])
	})

	t.Run("stringers and repeated keys", func(t *testing.T) {
		data, err := formatPayload("{e} {e} {n}", Fields{"e": errors.New("x"), "n": 1.5})
		require.NoError(t, err)
		assert.Equal(t, "x x 1.5", data[KeyMessage])
	})

	t.Run("empty braces and unterminated brace stay verbatim", func(t *testing.T) {
		data, err := formatPayload("a {} b { } c {d", Fields{})
		require.NoError(t, err)
		assert.Equal(t, "a {} b { } c {d", data[KeyMessage])
	})

	t.Run("engine keys override details", func(t *testing.T) {
		data, err := formatPayload("real", Fields{KeyMessage: "fake", KeyFormat: "fake"})
		require.NoError(t, err)
		assert.Equal(t, "real", data[KeyMessage])
		assert.Equal(t, "real", data[KeyFormat])
	})
}

func TestFormatPayload_Error(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		e := errors.New("all your base are belong to us")
		data, err := formatPayload(e)
		require.NoError(t, err)
		assert.Equal(t, Fields{
			KeyErr:     e,
			KeyMessage: e.Error(),
			KeyStack:   "all your base are belong to us",
		}, data)
		assert.NotContains(t, data, KeyFormat)
	})

	t.Run("wrapped error stack is the cause history", func(t *testing.T) {
		e := fmt.Errorf("outer: %w", errors.New("inner"))
		data, err := formatPayload(e)
		require.NoError(t, err)
		assert.Equal(t, "outer: inner -> inner", data[KeyStack])
	})

	t.Run("stack trace from pkg/errors", func(t *testing.T) {
		e := pkgerrors.Wrap(pkgerrors.New("root"), "outer")
		data, err := formatPayload(e)
		require.NoError(t, err)
		stack, ok := data[KeyStack].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(stack, "outer: root"), stack)
		assert.Contains(t, stack, "TestFormatPayload_Error")
	})

	t.Run("error keeps details and is not templated", func(t *testing.T) {
		e := errors.New("{not} a template")
		data, err := formatPayload(e, Fields{"request": "r1"})
		require.NoError(t, err)
		assert.Equal(t, "{not} a template", data[KeyMessage])
		assert.Equal(t, "r1", data["request"])
		assert.Same(t, e, data[KeyErr])
	})
}

func TestFormatPayload_InvalidArguments(t *testing.T) {
	for _, v := range []any{map[string]any{"foo": "bar"}, 42, nil, []string{"a"}, struct{}{}} {
		_, err := formatPayload(v)
		var ife *InvalidFormatError
		assert.True(t, errors.As(err, &ife), "%T", v)
	}

	for _, d := range []any{"bar", 1, []any{"a", 1}, map[int]string{1: "a"}, &Fields{}} {
		_, err := formatPayload("foo", d)
		var ide *InvalidDetailsError
		assert.True(t, errors.As(err, &ide), "%T", d)
	}
}

func TestMergeDetails(t *testing.T) {
	type attrs map[string]int

	got, err := mergeDetails([]any{
		Fields{"a": 1, "b": 1},
		nil,
		map[string]any{"b": 2},
		map[string]string{"c": "3"},
		attrs{"d": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, Fields{"a": 1, "b": 2, "c": "3", "d": 4}, got)

	got, err = mergeDetails(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
