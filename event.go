package emitter

import "context"

// IOError is the type of events emitted when an input or output operation fails.
const IOError = "ioError"

// Payload is the value passed to listeners. Every payload embeds Event,
// which carries the type, target and default-prevention state.
type Payload interface {
	// Type returns the event type used to look up listeners
	Type() string
	// Target returns the emitter the event was last emitted on
	Target() EventEmitter
	// Cancelable reports whether PreventDefault has any effect
	Cancelable() bool
	// PreventDefault marks the default action as prevented if the event is cancelable
	PreventDefault()
	// IsDefaultPrevented reports whether PreventDefault was called on a cancelable event
	IsDefaultPrevented() bool
	// Context returns the context attached to the event
	Context() context.Context

	base() *Event
}

// Event is the basic payload. Use NewEvent to create one, or embed it
// in a struct to define a payload that carries extra data.
type Event struct {
	typ        string
	target     EventEmitter
	cancelable bool
	prevented  bool
	ctx        context.Context
}

var _ Payload = (*Event)(nil)

// NewEvent creates an event of the given type
func NewEvent(typ string, cancelable bool) *Event {
	return &Event{typ: typ, cancelable: cancelable}
}

// Type returns the event type
func (e *Event) Type() string {
	return e.typ
}

// Target returns the emitter the event was emitted on, or nil before the first emission
func (e *Event) Target() EventEmitter {
	return e.target
}

// Cancelable reports whether the default action can be prevented
func (e *Event) Cancelable() bool {
	return e.cancelable
}

// PreventDefault cancels the default action. It has no effect on
// events that are not cancelable.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.prevented = true
	}
}

// IsDefaultPrevented reports whether the default action was cancelled
func (e *Event) IsDefaultPrevented() bool {
	return e.prevented
}

// Context returns the event context. It is never nil.
func (e *Event) Context() context.Context {
	if e.ctx != nil {
		return e.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of the event carrying ctx.
func (e *Event) WithContext(ctx context.Context) *Event {
	e2 := *e
	e2.ctx = ctx
	return &e2
}

func (e *Event) base() *Event {
	return e
}

// init resets the event for reuse from the pool
func (e *Event) init(typ string, cancelable bool) {
	e.typ = typ
	e.cancelable = cancelable
	e.prevented = false
}

// IOErrorEvent is emitted when an error causes an input or output operation to fail.
type IOErrorEvent struct {
	Event
	text string
}

// NewIOErrorEvent creates an IOErrorEvent. typ is usually IOError.
func NewIOErrorEvent(typ string, cancelable bool, text string) *IOErrorEvent {
	return &IOErrorEvent{
		Event: Event{typ: typ, cancelable: cancelable},
		text:  text,
	}
}

// Text returns the error message
func (e *IOErrorEvent) Text() string {
	return e.text
}
