package pavlog

import (
	"errors"
	"io"
	"strconv"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func newBenchLogger(b *testing.B, min Level, l Listener) *Logger {
	b.Helper()
	lg, err := NewRegistry().Get("bench:a:b")
	if err != nil {
		b.Fatal(err)
	}
	if err = lg.Use(min, l); err != nil {
		b.Fatal(err)
	}
	return lg
}

var discard = ListenerFunc(func(Event) error { return nil })

func BenchmarkInfo_Plain(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, discard)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Info("processed")
	}
}

func BenchmarkInfo_Template(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, discard)
	details := Fields{"user": "bob", "count": 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Info("user {user} processed {count} items", details)
	}
}

func BenchmarkError_PkgErrors(b *testing.B) {
	l := newBenchLogger(b, ErrorLevel, discard)
	err := pkgerrors.Wrap(errors.New("root cause"), "wrapped")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Error(err)
	}
}

func BenchmarkBubbling_Depth(b *testing.B) {
	for _, depth := range []int{1, 4, 16} {
		b.Run(strconv.Itoa(depth), func(b *testing.B) {
			l := NewRegistry().Root()
			_ = l.Use(TraceLevel, discard)
			for i := 0; i < depth; i++ {
				l = l.MustChild("n")
				_ = l.Use(TraceLevel, discard)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = l.Info("deep")
			}
		})
	}
}

func BenchmarkJSONListener(b *testing.B) {
	l := newBenchLogger(b, InfoLevel, NewJSONListener(io.Discard, io.Discard))
	details := Fields{"user": "bob"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Info("hello {user}", details)
	}
}
