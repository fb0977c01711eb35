package emitter_test

import (
	"fmt"

	"github.com/rbaliyan/emitter"
)

type Loader struct {
	emitter.Emitter
	url string
}

func NewLoader(url string) *Loader {
	l := &Loader{url: url}
	emitter.Implement(l)
	return l
}

func (l *Loader) Load() {
	if !l.Emit(emitter.NewEvent("start", true)) {
		fmt.Println("load cancelled")
		return
	}
	l.Emit(emitter.NewIOErrorEvent(emitter.IOError, false, "connection reset"))
}

func onIOError(receiver any, p emitter.Payload) {
	l := receiver.(*Loader)
	fmt.Printf("%s: %s\n", l.url, p.(*emitter.IOErrorEvent).Text())
}

func Example() {
	l := NewLoader("https://example.com/a.png")
	l.On(emitter.IOError, onIOError, l)
	l.Load()

	l.Once("start", func(_ any, p emitter.Payload) {
		p.PreventDefault()
	}, nil)
	l.Load()
	// Output:
	// https://example.com/a.png: connection reset
	// load cancelled
}

func ExampleEmitter_EmitWith() {
	em := emitter.New()
	em.On("tick", func(_ any, p emitter.Payload) {
		fmt.Println("tick, target is emitter:", p.Target() == emitter.EventEmitter(em))
	}, nil)

	em.EmitWith("tick", false)
	fmt.Println(em.EmitWith("nobody-listens", false))
	// Output:
	// tick, target is emitter: true
	// true
}

func ExampleEmitter_Once() {
	em := emitter.New()
	em.Once("ready", func(any, emitter.Payload) { fmt.Println("ready") }, nil)
	em.EmitWith("ready", false)
	em.EmitWith("ready", false)
	fmt.Println(em.HasListener("ready"))
	// Output:
	// ready
	// false
}
