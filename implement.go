package emitter

// Host is implemented by every type that embeds Emitter or *Emitter.
type Host interface {
	EventEmitter
	emitter() *Emitter
}

func (e *Emitter) emitter() *Emitter {
	return e
}

// Implement binds the Emitter embedded in host to host and applies opts.
//
// Embedding Emitter gives a type the EventEmitter methods; Implement makes
// host, rather than the embedded Emitter, the target of emitted payloads.
// Call it once per instance, before registering listeners:
//
//	type Loader struct {
//	    emitter.Emitter
//	    url string
//	}
//
//	func NewLoader(url string) *Loader {
//	    l := &Loader{url: url}
//	    emitter.Implement(l)
//	    return l
//	}
func Implement(host Host, opts ...Option) {
	host.emitter().configure(host, opts...)
}
