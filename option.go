package emitter

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName is the tracer and meter name
const instrumentationName = "github.com/rbaliyan/emitter"

// options holds emitter configuration (unexported)
type options struct {
	logger         *slog.Logger
	runtime        *Runtime
	tracingEnabled bool
	metricsEnabled bool
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option option function for emitter configuration
type Option func(*options)

// WithLogger sets a custom logger for the emitter
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRuntime sets the runtime that provides the event pool and once queue.
// Default is DefaultRuntime.
func WithRuntime(r *Runtime) Option {
	return func(o *options) {
		if r != nil {
			o.runtime = r
		}
	}
}

// WithTracing enables/disables a span per emission. Default is false.
// The global tracer provider is used unless WithTracerProvider is given.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		o.tracingEnabled = enabled
	}
}

// WithTracerProvider enables tracing with the given provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
			o.tracingEnabled = true
		}
	}
}

// WithMetrics enables/disables emission and listener counters. Default is false.
// The global meter provider is used unless WithMeterProvider is given.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metricsEnabled = enabled
	}
}

// WithMeterProvider enables metrics with the given provider
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
			o.metricsEnabled = true
		}
	}
}

// newOptions creates options with defaults and applies provided options
func newOptions(opts ...Option) *options {
	o := &options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// configure applies options to e. target is the value set as payload
// target on emission, nil meaning e itself.
func (e *Emitter) configure(target EventEmitter, opts ...Option) {
	o := newOptions(opts...)
	if target != EventEmitter(e) {
		e.target = target
	}
	e.runtime = o.runtime
	e.logger = o.logger.With("component", "emitter>"+e.ID())
	e.tracer = nil
	if o.tracingEnabled {
		tp := o.tracerProvider
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		e.tracer = tp.Tracer(instrumentationName)
	}
	e.metrics = nil
	if o.metricsEnabled {
		mp := o.meterProvider
		if mp == nil {
			mp = otel.GetMeterProvider()
		}
		e.metrics = newMetrics(mp.Meter(instrumentationName), e.ID(), e.logger)
	}
}
