package pavlog

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsListener counts delivered events per level and logger name.
type MetricsListener struct {
	events *prometheus.CounterVec
}

// NewMetricsListener registers pavlog_events_total with reg. Registering
// twice against the same registerer reuses the existing counter. A nil reg
// leaves the counter unregistered.
func NewMetricsListener(reg prometheus.Registerer) (*MetricsListener, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pavlog",
		Name:      "events_total",
		Help:      "Number of log events delivered, by level and logger name",
	}, []string{"level", "logger"})

	if reg != nil {
		if err := reg.Register(events); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			events = existing
		}
	}

	return &MetricsListener{events: events}, nil
}

func (m *MetricsListener) Handle(ev Event) error {
	m.events.WithLabelValues(ev.Level.String(), ev.Name).Inc()
	return nil
}
