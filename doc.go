// Package emitter provides a synchronous, re-entrant event emitter that can be
// embedded in any type.
//
// Listeners are registered per event type and called in registration order
// on the emitting goroutine:
//
//	em := emitter.New()
//	em.On("complete", func(receiver any, p emitter.Payload) {
//	    fmt.Println("done:", p.Type())
//	}, nil)
//
//	em.Emit(emitter.NewEvent("complete", false))
//
//	// EmitWith reuses pooled events and allocates nothing without listeners
//	em.EmitWith("complete", false)
//
// Listeners:
// A listener is identified by its function and the receiver passed at
// registration; the receiver is handed back as the first argument on every
// call. Registering the same pair twice has no effect. Once registers a
// listener that is removed after its first call.
//
// Re-entrancy:
// Listeners may call On, Once, RemoveListener, Emit and EmitWith on any
// emitter. A listener added during an emission first runs on the next
// emission of its type; a listener removed during an emission still runs
// in the current one.
//
// Cancelation:
// Emit returns false when a listener called PreventDefault on a cancelable
// payload. Remaining listeners still run.
//
// Embedding:
// Embed Emitter in a struct to give it the EventEmitter methods, then call
// Implement so payload targets point at the struct:
//
//	type Loader struct {
//	    emitter.Emitter
//	}
//
//	l := &Loader{}
//	emitter.Implement(l, emitter.WithLogger(logger))
//	l.Emit(emitter.NewIOErrorEvent(emitter.IOError, false, "connection reset"))
//
// Options:
//   - WithLogger: set logger for the emitter. Default is slog.Default().
//   - WithRuntime: set the runtime holding the event pool and once queue. Default is DefaultRuntime.
//   - WithTracing / WithTracerProvider: a span per emission. Default is off.
//   - WithMetrics / WithMeterProvider: OpenTelemetry counters. Default is off.
//
// Emitters and runtimes are not safe for concurrent use. Give each goroutine
// its own runtime with WithRuntime when emitters are used from several goroutines.
package emitter
