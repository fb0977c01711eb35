package emitter

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	metricEmitted         = "emitter.emitted"
	metricListenerAdded   = "emitter.listeners.added"
	metricListenerRemoved = "emitter.listeners.removed"
	metricEventReused     = "emitter.events.pooled"

	attrEmitterID = "emitter.id"
	attrEventType = "event.type"
)

// metrics holds the counters of one emitter
type metrics struct {
	id      string
	emit    metric.Int64Counter
	added   metric.Int64Counter
	removed metric.Int64Counter
	reused  metric.Int64Counter
}

func newMetrics(meter metric.Meter, id string, logger *slog.Logger) *metrics {
	return &metrics{
		id:      id,
		emit:    newCounter(meter, logger, metricEmitted, "Total number of emissions that reached listeners"),
		added:   newCounter(meter, logger, metricListenerAdded, "Total number of listeners registered"),
		removed: newCounter(meter, logger, metricListenerRemoved, "Total number of listeners removed"),
		reused:  newCounter(meter, logger, metricEventReused, "Total number of events taken from the pool"),
	}
}

// newCounter creates a counter, falling back to a no-op counter on error
func newCounter(meter metric.Meter, logger *slog.Logger, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		logger.Warn("failed to create counter", "name", name, "error", err)
		return noop.Int64Counter{}
	}
	return c
}

func (m *metrics) attrs(typ string) metric.AddOption {
	return metric.WithAttributes(
		attribute.String(attrEmitterID, m.id),
		attribute.String(attrEventType, typ))
}

func (m *metrics) emitted(ctx context.Context, typ string) {
	m.emit.Add(ctx, 1, m.attrs(typ))
}

func (m *metrics) listenerAdded(typ string) {
	m.added.Add(context.Background(), 1, m.attrs(typ))
}

func (m *metrics) listenerRemoved(typ string) {
	m.removed.Add(context.Background(), 1, m.attrs(typ))
}

func (m *metrics) eventReused(typ string) {
	m.reused.Add(context.Background(), 1, m.attrs(typ))
}
