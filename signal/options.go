package signal

import "github.com/rs/zerolog"

// Hook observes the life of a signal's connections. Implementations must
// not modify the signal they observe.
type Hook interface {
	OnConnect(signal, connID string)
	OnDisconnect(signal, connID string)
	OnEmit(signal string, slots int)
	OnSlotPanic(signal, connID string, value any)
}

type options struct {
	name   string
	logger *zerolog.Logger
	hook   Hook
}

type Option func(*options)

// WithName names the signal in logs, errors and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger replaces the package logger for this signal.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

func WithHook(hook Hook) Option {
	return func(o *options) {
		o.hook = hook
	}
}
