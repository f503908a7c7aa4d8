package event

import "github.com/xuenqlve/sigslot/signal"

type Type int

const (
	ObserverPanic Type = 1000
)

type Event struct {
	Type  Type
	Key   string
	Value map[string]any
}

type ObserverFunc func(e Event)

type Subject interface {
	Register(et Type, observer ObserverFunc) *signal.Connection
	Unregister(et Type, observer ObserverFunc) bool
	Upload(event Event)
}
