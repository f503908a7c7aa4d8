package signal

// slot is the unit of dispatch stored by a Signal.
type slot[T any] interface {
	// call invokes the slot and reports whether its target was still there.
	call(v T) bool
	// equal reports whether other wraps the same callable. Slots of a
	// different kind are never equal.
	equal(other slot[T]) bool
	alive() bool
}

type funcSlot[T any] struct {
	fn func(T)
}

func (s *funcSlot[T]) call(v T) bool {
	s.fn(v)
	return true
}

func (s *funcSlot[T]) equal(other slot[T]) bool {
	o, ok := other.(*funcSlot[T])
	if !ok {
		return false
	}
	return funcPtr(s.fn) == funcPtr(o.fn)
}

func (s *funcSlot[T]) alive() bool {
	return true
}
