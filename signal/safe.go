package signal

import "sync"

// Safe is a Signal guarded by a mutex. Emit does not hold the lock while
// slots run, so slots may connect to or disconnect from the same Safe.
type Safe[T any] struct {
	mu  sync.RWMutex
	sig Signal[T]
}

func NewSafe[T any](opts ...Option) *Safe[T] {
	return &Safe[T]{sig: *New[T](opts...)}
}

func (s *Safe[T]) Name() string {
	return s.sig.name
}

func (s *Safe[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sig.Len()
}

func (s *Safe[T]) Connect(fn func(T)) *Connection {
	if fn == nil {
		return nil
	}
	return s.connect(&funcSlot[T]{fn: fn})
}

func (s *Safe[T]) Disconnect(fn func(T)) bool {
	if fn == nil {
		return false
	}
	return s.disconnect(&funcSlot[T]{fn: fn})
}

func (s *Safe[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sig.Clear()
}

func (s *Safe[T]) Emit(v T) {
	s.sig.emit(s.snapshot(), v)
}

func (s *Safe[T]) Call(v T) {
	s.Emit(v)
}

func (s *Safe[T]) TryEmit(v T) error {
	return s.sig.tryEmit(s.snapshot(), v)
}

func (s *Safe[T]) connect(sl slot[T]) *Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.sig.connect(sl)
	c.detach = s.detach
	return c
}

func (s *Safe[T]) disconnect(probe slot[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sig.disconnect(probe)
}

func (s *Safe[T]) detach(c *Connection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sig.detach(c)
}

func (s *Safe[T]) snapshot() []*entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sig.snapshot()
}
