package emitter

import (
	"sync"
	"time"
)

// RecordedEvent is a single emission seen by a Recorder
type RecordedEvent struct {
	Type       string
	Target     EventEmitter
	Cancelable bool
	Prevented  bool
	Text       string // set for IOErrorEvent payloads
	Timestamp  time.Time
}

// Recorder is a helper for testing code that emits events.
// It records every emission of the types it is attached to.
//
// Example:
//
//	rec := emitter.NewRecorder(nil)
//	rec.Attach(loader, emitter.IOError)
//	loader.Load()
//	if rec.CountFor(emitter.IOError) != 1 {
//	    t.Fatal("expected an io error")
//	}
type Recorder struct {
	mu      sync.Mutex
	events  []RecordedEvent
	handler Listener
}

// NewRecorder creates a new recorder. If handler is not nil it is called
// with the recorder as receiver after each emission is recorded.
func NewRecorder(handler Listener) *Recorder {
	return &Recorder{
		events:  make([]RecordedEvent, 0),
		handler: handler,
	}
}

// recordEvent is the listener registered by Attach. The recorder is the
// receiver, so every recorder has its own registration.
func recordEvent(receiver any, p Payload) {
	receiver.(*Recorder).record(p)
}

func (r *Recorder) record(p Payload) {
	if r.handler != nil {
		r.handler(r, p)
	}
	rec := RecordedEvent{
		Type:       p.Type(),
		Target:     p.Target(),
		Cancelable: p.Cancelable(),
		Prevented:  p.IsDefaultPrevented(),
		Timestamp:  time.Now(),
	}
	if ioe, ok := p.(*IOErrorEvent); ok {
		rec.Text = ioe.Text()
	}
	r.mu.Lock()
	r.events = append(r.events, rec)
	r.mu.Unlock()
}

// Attach registers the recorder on em for each of types
func (r *Recorder) Attach(em EventEmitter, types ...string) {
	for _, typ := range types {
		em.On(typ, recordEvent, r)
	}
}

// Detach removes the recorder from em for each of types
func (r *Recorder) Detach(em EventEmitter, types ...string) {
	for _, typ := range types {
		em.RemoveListener(typ, recordEvent, r)
	}
}

// Events returns a copy of all recorded events
func (r *Recorder) Events() []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]RecordedEvent, len(r.events))
	copy(result, r.events)
	return result
}

// EventsFor returns recorded events of a specific type
func (r *Recorder) EventsFor(typ string) []RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []RecordedEvent
	for _, ev := range r.events {
		if ev.Type == typ {
			result = append(result, ev)
		}
	}
	return result
}

// Count returns the number of recorded events
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// CountFor returns the number of recorded events of a specific type
func (r *Recorder) CountFor(typ string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			count++
		}
	}
	return count
}

// Last returns the last recorded event, or nil if none
func (r *Recorder) Last() *RecordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return nil
	}
	last := r.events[len(r.events)-1]
	return &last
}

// Reset clears all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = make([]RecordedEvent, 0)
	r.mu.Unlock()
}
