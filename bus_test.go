package pavlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_ForwardToIsSetOnce(t *testing.T) {
	child, parent, other := newBus(), newBus(), newBus()

	assert.False(t, child.forwardTo(nil))
	assert.False(t, child.forwardTo(child))
	assert.True(t, child.forwardTo(parent))
	assert.False(t, child.forwardTo(other))
	assert.Same(t, parent, child.parent.Load())
}

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	b := newBus()
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		b.subscribe(TraceLevel, ListenerFunc(func(Event) error {
			got = append(got, i)
			return nil
		}))
	}
	require.NoError(t, b.emit(Event{Level: InfoLevel}))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, 5, b.listenerCount())
}

func TestBus_ThresholdIsInclusive(t *testing.T) {
	b := newBus()
	rec := &recorder{}
	b.subscribe(WarnLevel, rec)

	for _, l := range Levels() {
		require.NoError(t, b.emit(Event{Level: l}))
	}

	var levels []Level
	for _, ev := range rec.all() {
		levels = append(levels, ev.Level)
	}
	assert.Equal(t, []Level{FatalLevel, ErrorLevel, WarnLevel}, levels)
}

func TestBus_EmptyBus(t *testing.T) {
	assert.NoError(t, newBus().emit(Event{Level: FatalLevel}))
	assert.Zero(t, newBus().listenerCount())
}
