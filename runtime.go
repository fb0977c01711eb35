package emitter

// DefaultRuntime is shared by every Emitter that is not given its own
// runtime with WithRuntime.
var DefaultRuntime = NewRuntime()

// Runtime holds the state shared between emitters: a free-list of events
// reused by EmitWith and the scratch list of once registrations waiting to
// be removed after an emission.
//
// Both lists grow to the deepest nesting of emissions seen so far and are
// never shrunk. A Runtime must only be used from one goroutine; code that
// emits from several goroutines should give each its own Runtime.
type Runtime struct {
	pool []*Event
	once []*listener
}

// NewRuntime creates an empty runtime
func NewRuntime() *Runtime {
	return &Runtime{}
}

// PoolSize returns the number of idle events in the pool
func (r *Runtime) PoolSize() int {
	return len(r.pool)
}

// Pending returns the number of once registrations queued for removal
func (r *Runtime) Pending() int {
	return len(r.once)
}

// acquire returns a pooled event reset to typ, or a new one if the pool is empty.
func (r *Runtime) acquire(typ string, cancelable bool) (*Event, bool) {
	if n := len(r.pool); n > 0 {
		e := r.pool[n-1]
		r.pool[n-1] = nil
		r.pool = r.pool[:n-1]
		e.init(typ, cancelable)
		return e, true
	}
	return NewEvent(typ, cancelable), false
}

// release clears the event's references and returns it to the pool
func (r *Runtime) release(e *Event) {
	e.target = nil
	e.ctx = nil
	r.pool = append(r.pool, e)
}

func (r *Runtime) queueOnce(l *listener) {
	r.once = append(r.once, l)
}

// drainOnce removes queued once registrations, most recently queued first.
func (r *Runtime) drainOnce() {
	for n := len(r.once); n > 0; n = len(r.once) {
		l := r.once[n-1]
		r.once[n-1] = nil
		r.once = r.once[:n-1]
		l.owner.removeOnce(l)
	}
}
