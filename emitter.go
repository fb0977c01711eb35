package emitter

import (
	"context"
	"log/slog"
	"slices"
	"unsafe"

	"go.opentelemetry.io/otel/trace"
)

// Listener handles an emitted payload. receiver is the value given when the
// listener was registered.
type Listener func(receiver any, p Payload)

// EventEmitter is the set of operations shared by Emitter and every type
// that embeds it.
type EventEmitter interface {
	// On registers fn for events of type typ. Registering the same
	// (typ, fn, receiver) again has no effect.
	On(typ string, fn Listener, receiver any)
	// Once is like On but the listener is removed after its first call.
	Once(typ string, fn Listener, receiver any)
	// RemoveListener removes a registration. Removing an unknown listener has no effect.
	RemoveListener(typ string, fn Listener, receiver any)
	// HasListener reports whether any listener is registered for typ.
	HasListener(typ string) bool
	// Emit calls every listener registered for p.Type() and reports whether
	// the default action was left alone.
	Emit(p Payload) bool
	// EmitWith emits a pooled Event of type typ.
	EmitWith(typ string, cancelable bool) bool
}

// listener is one registration. It is never modified after creation.
type listener struct {
	typ      string
	fn       Listener
	ptr      unsafe.Pointer
	receiver any
	owner    *Emitter
	once     bool
}

func (l *listener) matches(ptr unsafe.Pointer, receiver any, owner *Emitter) bool {
	return l.ptr == ptr && l.owner == owner && sameReceiver(l.receiver, receiver)
}

// Emitter keeps listeners per event type and calls them synchronously on Emit.
//
// Listeners run in registration order. A listener may register, remove or
// emit while an emission is in progress: listeners added during an emission
// are first called by the next emission of that type, and listeners removed
// during an emission are still called by the current one. Lists are copied
// on write while any emission is running on the emitter, so the list being
// iterated is never modified.
//
// Listener identity is the listener's function value together with its
// receiver. Top-level functions are always the same listener. Every closure
// instance and every evaluated method value (c.Handle) is a distinct
// listener, so keep the value passed to On to remove it later, or register a
// top-level function and pass the object as receiver. Receivers are compared
// with == and must be comparable, including values held in interface fields.
//
// The zero value is ready to use. An Emitter is not safe for concurrent use.
type Emitter struct {
	events      map[string][]*listener
	notifyLevel int
	target      EventEmitter
	runtime     *Runtime
	id          string
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     *metrics
}

var _ EventEmitter = (*Emitter)(nil)

// New creates a configured emitter
func New(opts ...Option) *Emitter {
	e := &Emitter{}
	e.configure(nil, opts...)
	return e
}

// ID returns the emitter ID
func (e *Emitter) ID() string {
	if e.id == "" {
		e.id = NewID()
	}
	return e.id
}

// On registers fn for events of type typ.
// It panics with ErrNilListener if fn is nil and with
// ErrIncomparableReceiver if receiver is not comparable.
func (e *Emitter) On(typ string, fn Listener, receiver any) {
	e.addListener(typ, fn, receiver, false)
}

// Once registers fn for the next event of type typ only.
// It panics if fn is nil or receiver is not comparable.
func (e *Emitter) Once(typ string, fn Listener, receiver any) {
	e.addListener(typ, fn, receiver, true)
}

func (e *Emitter) addListener(typ string, fn Listener, receiver any, once bool) {
	ptr := checkListener(typ, fn, receiver)
	if e.events == nil {
		e.events = make(map[string][]*listener)
	}
	list := e.events[typ]
	for _, l := range list {
		if l.matches(ptr, receiver, e) {
			if e.debugEnabled() {
				e.logger.Debug("duplicate listener ignored", "type", typ, "once", once)
			}
			return
		}
	}
	if e.notifyLevel != 0 {
		// force append to copy, an emission may be iterating list
		list = slices.Clip(list)
	}
	e.events[typ] = append(list, &listener{
		typ:      typ,
		fn:       fn,
		ptr:      ptr,
		receiver: receiver,
		owner:    e,
		once:     once,
	})
	if e.metrics != nil {
		e.metrics.listenerAdded(typ)
	}
}

// RemoveListener removes the registration of fn and receiver for typ.
func (e *Emitter) RemoveListener(typ string, fn Listener, receiver any) {
	if fn == nil {
		return
	}
	e.removeListener(typ, listenerID(fn), receiver)
}

func (e *Emitter) removeListener(typ string, ptr unsafe.Pointer, receiver any) bool {
	list, ok := e.events[typ]
	if !ok {
		return false
	}
	for i, l := range list {
		if !l.matches(ptr, receiver, e) {
			continue
		}
		if e.notifyLevel != 0 {
			list = slices.Clone(list)
		}
		list = slices.Delete(list, i, i+1)
		if len(list) == 0 {
			delete(e.events, typ)
		} else {
			e.events[typ] = list
		}
		if e.metrics != nil {
			e.metrics.listenerRemoved(typ)
		}
		return true
	}
	return false
}

// removeOnce removes a once registration after it has been called
func (e *Emitter) removeOnce(l *listener) {
	if e.removeListener(l.typ, l.ptr, l.receiver) && e.debugEnabled() {
		e.logger.Debug("once listener removed", "type", l.typ)
	}
}

// HasListener reports whether any listener is registered for typ
func (e *Emitter) HasListener(typ string) bool {
	_, ok := e.events[typ]
	return ok
}

// ListenerCount returns the number of listeners registered for typ
func (e *Emitter) ListenerCount(typ string) int {
	return len(e.events[typ])
}

// Emit sets the payload target and calls the listeners registered for its
// type in registration order. Once listeners are removed after all listeners
// have run. It returns false if a listener prevented the default action,
// and true otherwise, including when there are no listeners.
//
// Panics raised by listeners are not recovered.
func (e *Emitter) Emit(p Payload) bool {
	ev := p.base()
	ev.target = e.host()
	list := e.events[ev.typ]
	if len(list) == 0 {
		return true
	}
	if e.tracer != nil {
		defer e.startSpan(ev, len(list))()
	}
	if e.metrics != nil {
		e.metrics.emitted(ev.Context(), ev.typ)
	}
	e.notify(list, p, e.rt())
	return !p.IsDefaultPrevented()
}

// notify calls listeners from list, the snapshot taken when the emission started.
func (e *Emitter) notify(list []*listener, p Payload, rt *Runtime) {
	e.notifyLevel++
	defer e.leave(rt)
	for _, l := range list {
		l.fn(l.receiver, p)
		if l.once {
			rt.queueOnce(l)
		}
	}
}

// leave ends an emission, also when a listener panics
func (e *Emitter) leave(rt *Runtime) {
	e.notifyLevel--
	rt.drainOnce()
}

// EmitWith emits an Event of type typ taken from the runtime pool. Nothing
// is allocated when no listener is registered for typ. The event is
// returned to the pool once the emission is over, so listeners must not
// keep a reference to it.
func (e *Emitter) EmitWith(typ string, cancelable bool) bool {
	if _, ok := e.events[typ]; !ok {
		return true
	}
	rt := e.rt()
	ev, reused := rt.acquire(typ, cancelable)
	if reused && e.metrics != nil {
		e.metrics.eventReused(typ)
	}
	defer rt.release(ev)
	// go through the host so an Emit defined on it is honoured
	return e.host().Emit(ev)
}

// host returns the value set as payload target
func (e *Emitter) host() EventEmitter {
	if e.target != nil {
		return e.target
	}
	return e
}

func (e *Emitter) rt() *Runtime {
	if e.runtime != nil {
		return e.runtime
	}
	return DefaultRuntime
}

func (e *Emitter) debugEnabled() bool {
	return e.logger != nil && e.logger.Enabled(context.Background(), slog.LevelDebug)
}
