package pavlog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder is a Listener that keeps every event it receives.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Handle(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) messages() []string {
	var out []string
	for _, ev := range r.all() {
		out = append(out, ev.Message())
	}
	return out
}

// newTestLogger returns a logger from a fresh registry with a recorder
// attached at min.
func newTestLogger(t testing.TB, name string, min Level) (*Logger, *recorder) {
	t.Helper()
	l, err := NewRegistry().Get(name)
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, l.Use(min, rec))
	return l, rec
}
