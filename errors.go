package emitter

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// Registration errors. Both indicate a programming error and are raised as
// panics by On and Once; use errors.Is on the recovered value to check them.
var (
	// ErrNilListener is raised when a nil listener is registered
	ErrNilListener = errors.New("emitter: nil listener")

	// ErrIncomparableReceiver is raised when a receiver cannot be compared with ==.
	// Receivers take part in listener identity, so they must be comparable,
	// including the values held in their interface fields.
	ErrIncomparableReceiver = errors.New("emitter: receiver is not comparable")
)

// listenerID returns the identity of fn: the pointer to its function value.
// Top-level functions and closures that capture nothing have one static
// value; each closure instance and each evaluated method value has its own.
func listenerID(fn Listener) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

// checkListener validates a registration and returns the listener identity.
func checkListener(typ string, fn Listener, receiver any) unsafe.Pointer {
	if fn == nil {
		panic(fmt.Errorf("%w: type %q", ErrNilListener, typ))
	}
	if receiver != nil && !reflect.TypeOf(receiver).Comparable() {
		panic(fmt.Errorf("%w: type %q, receiver %T", ErrIncomparableReceiver, typ, receiver))
	}
	return listenerID(fn)
}

// sameReceiver compares receivers, turning the runtime panic raised for a
// comparable type holding an incomparable value into ErrIncomparableReceiver.
func sameReceiver(a, b any) bool {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Errorf("%w: receiver %T: %v", ErrIncomparableReceiver, a, r))
		}
	}()
	return a == b
}
