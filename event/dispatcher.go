// SPDX-License-Identifier: MIT

package event

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger routes listener failures to logger. Panics on nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("event: WithLogger(nil)")
	}
	return func(d *Dispatcher) { d.logger = logger }
}

// Dispatcher delivers updates to a single listener.
// A nil *Dispatcher is valid and drops every update.
type Dispatcher struct {
	listener Listener
	logger   logrus.FieldLogger
	failures int
}

// NewDispatcher returns a Dispatcher for listener, which may be nil.
func NewDispatcher(listener Listener, opts ...Option) *Dispatcher {
	d := &Dispatcher{listener: listener, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// SetListener replaces the registered listener; nil unregisters it.
func (d *Dispatcher) SetListener(listener Listener) { d.listener = listener }

// HasListener reports whether a listener is registered.
func (d *Dispatcher) HasListener() bool { return d != nil && d.listener != nil }

// Failures returns how many listener calls failed so far.
func (d *Dispatcher) Failures() int {
	if d == nil {
		return 0
	}

	return d.failures
}

// Dispatch hands u to the listener, if any. Errors and panics raised by the
// listener are logged and swallowed.
func (d *Dispatcher) Dispatch(u Update) {
	if !d.HasListener() {
		return
	}
	if err := d.call(u); err != nil {
		d.failures++
		d.logger.WithFields(logrus.Fields{
			"kind":  u.Kind.String(),
			"error": err,
		}).Warn("event: listener failed")
	}
}

func (d *Dispatcher) call(u Update) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return d.listener(u)
}
