package signal

import (
	"runtime"
	"unsafe"
	"weak"
)

// Connector is implemented by Signal and Safe. It lets the method
// connection functions work with both.
type Connector[T any] interface {
	connect(sl slot[T]) *Connection
	disconnect(probe slot[T]) bool
}

// methodSlot binds a receiver to a method expression. Exactly one of
// strong and weak is set.
type methodSlot[R, T any] struct {
	strong *R
	weak   weak.Pointer[R]
	method func(*R, T)
}

func (s *methodSlot[R, T]) receiver() *R {
	if s.strong != nil {
		return s.strong
	}
	return s.weak.Value()
}

func (s *methodSlot[R, T]) call(v T) bool {
	r := s.receiver()
	if r == nil {
		return false
	}
	s.method(r, v)
	return true
}

// equal compares receiver addresses and methods. Values of a zero-size
// type have no state and may share one address, so for them only the
// method is compared: any receiver of that type matches.
func (s *methodSlot[R, T]) equal(other slot[T]) bool {
	o, ok := other.(*methodSlot[R, T])
	if !ok {
		return false
	}
	if funcPtr(s.method) != funcPtr(o.method) {
		return false
	}
	r := s.receiver()
	if r == nil {
		return false
	}
	return zeroSize[R]() || r == o.receiver()
}

func (s *methodSlot[R, T]) alive() bool {
	return s.receiver() != nil
}

// ConnectMethod connects method bound to recv. The signal holds a strong
// reference to recv, so it stays alive at least as long as the connection.
// method is a method expression such as (*Counter).Add. A nil recv or
// method is ignored and yields a nil Connection.
func ConnectMethod[R, T any](s Connector[T], recv *R, method func(*R, T)) *Connection {
	if recv == nil || method == nil {
		return nil
	}
	return s.connect(&methodSlot[R, T]{strong: recv, method: method})
}

// ConnectMethodWeak is like ConnectMethod but does not keep recv alive.
// After recv has been garbage collected the slot is no longer called and
// is dropped the next time the signal is modified.
//
// Receivers that are never collected, such as package-level variables and
// values of a zero-size type, are held by a plain reference.
func ConnectMethodWeak[R, T any](s Connector[T], recv *R, method func(*R, T)) *Connection {
	if recv == nil || method == nil {
		return nil
	}
	if zeroSize[R]() || !collectable(recv) {
		return s.connect(&methodSlot[R, T]{strong: recv, method: method})
	}
	return s.connect(&methodSlot[R, T]{weak: weak.Make(recv), method: method})
}

func zeroSize[R any]() bool {
	var zero R
	return unsafe.Sizeof(zero) == 0
}

// collectable reports whether p points into the garbage collected heap.
// weak.Make aborts the process for any other pointer. AddCleanup returns
// a zero Cleanup, without registering anything, when p is not a heap
// object.
func collectable[R any](p *R) bool {
	c := runtime.AddCleanup(p, func(uintptr) {}, 0)
	if c == (runtime.Cleanup{}) {
		return false
	}
	c.Stop()
	return true
}

// DisconnectMethod removes the first connection of method bound to recv,
// whichever form it was connected with. It reports whether a connection
// was removed.
func DisconnectMethod[R, T any](s Connector[T], recv *R, method func(*R, T)) bool {
	if recv == nil || method == nil {
		return false
	}
	return s.disconnect(&methodSlot[R, T]{strong: recv, method: method})
}
