package event

import (
	"fmt"
	"sync"

	"github.com/xuenqlve/sigslot/errors"
	"github.com/xuenqlve/sigslot/log"
	"github.com/xuenqlve/sigslot/signal"
)

var EventAdmin = NewEventManage()

var _ Subject = (*EventManage)(nil)

// EventManage dispatches events to the observers registered for their type.
// Each type is backed by its own signal, so observers run synchronously in
// registration order.
type EventManage struct {
	mu       sync.Mutex
	opts     []signal.Option
	Observer map[Type]*signal.Safe[Event]
}

// NewEventManage returns a manager whose per-type signals are built with
// opts. The signal name is always derived from the event type.
func NewEventManage(opts ...signal.Option) *EventManage {
	return &EventManage{
		opts:     opts,
		Observer: map[Type]*signal.Safe[Event]{},
	}
}

func (e *EventManage) Register(et Type, observer ObserverFunc) *signal.Connection {
	return e.lookup(et, true).Connect(observer)
}

// Unregister removes the first registration of observer for et.
func (e *EventManage) Unregister(et Type, observer ObserverFunc) bool {
	sig := e.lookup(et, false)
	if sig == nil {
		return false
	}
	return sig.Disconnect(observer)
}

// Upload delivers event to its observers. A panicking observer stops the
// delivery and the panic reaches the caller.
func (e *EventManage) Upload(event Event) {
	sig := e.lookup(event.Type, false)
	if sig == nil {
		log.Debugf("no observers for event type %d", event.Type)
		return
	}
	sig.Emit(event)
}

// TryUpload delivers event to every observer, collecting their panics. The
// combined failure is also reported as a PanicLevel ObserverPanic event.
// Failures of the ObserverPanic observers themselves are only logged.
func (e *EventManage) TryUpload(event Event) error {
	sig := e.lookup(event.Type, false)
	if sig == nil {
		return nil
	}
	err := sig.TryEmit(event)
	if err == nil {
		return nil
	}
	log.Errorf("event type %d: %v", event.Type, err)
	if event.Type != ObserverPanic {
		if rerr := e.TryUpload(LevelErrorEvent(ObserverPanic, PanicLevel, err)); rerr != nil {
			log.Warnf("reporting failure of event type %d: %v", event.Type, rerr)
		}
	}
	return err
}

func (e *EventManage) Count(et Type) int {
	if sig := e.lookup(et, false); sig != nil {
		return sig.Len()
	}
	return 0
}

func (e *EventManage) Clear(et Type) {
	if sig := e.lookup(et, false); sig != nil {
		sig.Clear()
	}
}

func (e *EventManage) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sig := range e.Observer {
		sig.Clear()
	}
}

func (e *EventManage) lookup(et Type, create bool) *signal.Safe[Event] {
	e.mu.Lock()
	defer e.mu.Unlock()
	sig, ok := e.Observer[et]
	if !ok && create {
		opts := append(append([]signal.Option{}, e.opts...), signal.WithName(fmt.Sprintf("event-%d", et)))
		sig = signal.NewSafe[Event](opts...)
		e.Observer[et] = sig
	}
	return sig
}

const (
	Error = "error"
	Level = "level"
)

const (
	PanicLevel = "panic"
	ErrorLevel = "error"
)

// ErrorEvent builds an ErrorLevel event carrying err.
func ErrorEvent(t Type, err error) Event {
	return LevelErrorEvent(t, ErrorLevel, err)
}

func LevelErrorEvent(t Type, level string, err error) Event {
	return Event{
		Type:  t,
		Value: errorValue(level, err),
	}
}

func errorValue(level string, err error) map[string]any {
	return map[string]any{
		Error: err.Error(),
		Level: level,
	}
}

// ValueLevel returns the level of an error event, or "" if there is none.
func ValueLevel(data map[string]any) string {
	level, _ := data[Level].(string)
	return level
}

func ValueError(data map[string]any) error {
	if data == nil {
		return nil
	}
	if err, ok := data[Error]; ok {
		return errors.Errorf("%v", err)
	}
	return nil
}
