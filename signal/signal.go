package signal

import (
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/multierr"

	"github.com/xuenqlve/sigslot/errors"
	"github.com/xuenqlve/sigslot/log"
)

// Signal broadcasts values of type T to its connected slots. The zero
// value is an unnamed signal ready to use.
type Signal[T any] struct {
	name    string
	logger  *zerolog.Logger
	hook    Hook
	entries []*entry[T]
}

type entry[T any] struct {
	slot slot[T]
	conn *Connection
}

// New returns a signal configured by opts.
func New[T any](opts ...Option) *Signal[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[T]{
		name:   o.name,
		logger: o.logger,
		hook:   o.hook,
	}
}

func (s *Signal[T]) Name() string {
	return s.name
}

// Len returns the number of connected slots whose target is still alive.
func (s *Signal[T]) Len() int {
	n := 0
	for _, e := range s.entries {
		if e.slot.alive() {
			n++
		}
	}
	return n
}

// Connect appends fn to the slots. Connecting the same fn twice makes it
// run twice per Emit. A nil fn is ignored and yields a nil Connection.
func (s *Signal[T]) Connect(fn func(T)) *Connection {
	if fn == nil {
		return nil
	}
	return s.connect(&funcSlot[T]{fn: fn})
}

// Disconnect removes the first slot connected with fn and reports whether
// there was one. Disconnecting something that is not connected is a no-op.
func (s *Signal[T]) Disconnect(fn func(T)) bool {
	if fn == nil {
		return false
	}
	return s.disconnect(&funcSlot[T]{fn: fn})
}

// Clear disconnects every slot, releasing the receivers held by them.
func (s *Signal[T]) Clear() {
	if len(s.entries) == 0 {
		return
	}
	entries := s.entries
	s.entries = nil
	for _, e := range entries {
		s.drop(e)
	}
	s.log().Debug().Str("signal", s.name).Int("slots", len(entries)).Msg("signal cleared")
}

// Emit calls every connected slot with v, in connection order. A panic in
// a slot propagates to the caller and the remaining slots are not called.
func (s *Signal[T]) Emit(v T) {
	s.emit(s.snapshot(), v)
}

// Call is an alias of Emit, convenient as a method value:
//
//	button.OnClick(saved.Call)
func (s *Signal[T]) Call(v T) {
	s.Emit(v)
}

// TryEmit is like Emit but a panicking slot does not stop the others. Each
// panic is recovered and returned as an *errors.SlotError; several of them
// are combined with multierr.
func (s *Signal[T]) TryEmit(v T) error {
	return s.tryEmit(s.snapshot(), v)
}

func (s *Signal[T]) emit(entries []*entry[T], v T) {
	s.log().Debug().Str("signal", s.name).Int("slots", len(entries)).Msg("emit")
	if s.hook == nil {
		for _, e := range entries {
			if !e.conn.removed.Load() {
				e.slot.call(v)
			}
		}
		return
	}

	s.hook.OnEmit(s.name, len(entries))
	var current *entry[T]
	defer func() {
		if r := recover(); r != nil {
			if current != nil {
				s.hook.OnSlotPanic(s.name, current.conn.id, r)
			}
			panic(r)
		}
	}()
	for _, e := range entries {
		if !e.conn.removed.Load() {
			current = e
			e.slot.call(v)
		}
	}
}

func (s *Signal[T]) tryEmit(entries []*entry[T], v T) error {
	s.log().Debug().Str("signal", s.name).Int("slots", len(entries)).Msg("try emit")
	if s.hook != nil {
		s.hook.OnEmit(s.name, len(entries))
	}
	var errs error
	for _, e := range entries {
		if e.conn.removed.Load() {
			continue
		}
		if err := s.tryCall(e, v); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (s *Signal[T]) tryCall(e *entry[T], v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewSlotError(s.name, e.conn.id, r)
			s.log().Error().Str("signal", s.name).Str("conn", e.conn.id).
				Interface("panic", r).Msg("slot panicked")
			if s.hook != nil {
				s.hook.OnSlotPanic(s.name, e.conn.id, r)
			}
		}
	}()
	e.slot.call(v)
	return nil
}

func (s *Signal[T]) connect(sl slot[T]) *Connection {
	s.prune()
	c := &Connection{
		id:     uuid.NewV4().String(),
		signal: s.name,
		detach: s.detach,
	}
	s.entries = append(s.entries, &entry[T]{slot: sl, conn: c})
	s.log().Debug().Str("signal", s.name).Str("conn", c.id).Msg("slot connected")
	if s.hook != nil {
		s.hook.OnConnect(s.name, c.id)
	}
	return c
}

func (s *Signal[T]) disconnect(probe slot[T]) bool {
	s.prune()
	for i, e := range s.entries {
		if e.slot.equal(probe) {
			s.remove(i)
			return true
		}
	}
	return false
}

func (s *Signal[T]) detach(c *Connection) bool {
	for i, e := range s.entries {
		if e.conn == c {
			s.remove(i)
			return true
		}
	}
	return false
}

// prune drops slots whose weak receiver has been collected.
func (s *Signal[T]) prune() {
	for i := 0; i < len(s.entries); {
		if s.entries[i].slot.alive() {
			i++
			continue
		}
		s.remove(i)
	}
}

// remove deletes entries[i] keeping the order of the others. Snapshots
// taken by an ongoing Emit are copies and are not affected.
func (s *Signal[T]) remove(i int) {
	e := s.entries[i]
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	s.drop(e)
}

func (s *Signal[T]) drop(e *entry[T]) {
	e.conn.removed.Store(true)
	s.log().Debug().Str("signal", s.name).Str("conn", e.conn.id).Msg("slot disconnected")
	if s.hook != nil {
		s.hook.OnDisconnect(s.name, e.conn.id)
	}
}

func (s *Signal[T]) snapshot() []*entry[T] {
	if len(s.entries) == 0 {
		return nil
	}
	entries := make([]*entry[T], len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *Signal[T]) log() *zerolog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return log.Default()
}
