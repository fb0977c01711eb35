package emitter

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	spanKeyListeners = "event.listeners"
	spanKeyPrevented = "event.prevented"
)

// startSpan starts the emission span and makes it the event context while
// listeners run. The returned func ends the span and restores the context.
func (e *Emitter) startSpan(ev *Event, listeners int) func() {
	parent := ev.ctx
	ctx, span := e.tracer.Start(ev.Context(), "emit "+ev.typ,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(attrEmitterID, e.ID()),
			attribute.String(attrEventType, ev.typ),
			attribute.Int(spanKeyListeners, listeners)))
	ev.ctx = ctx
	return func() {
		span.SetAttributes(attribute.Bool(spanKeyPrevented, ev.prevented))
		span.End()
		ev.ctx = parent
	}
}
