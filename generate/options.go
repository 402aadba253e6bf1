// SPDX-License-Identifier: MIT

package generate

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/event"
)

// Option configures a generator.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	listener event.Listener
	logger   logrus.FieldLogger
}

// WithSeed seeds a private *rand.Rand. Use it in tests and examples to lock
// outcomes.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithListener registers the listener that receives progress updates.
func WithListener(l event.Listener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// WithLogger sets the logger for listener failures and progress. Panics on
// nil.
func WithLogger(logger logrus.FieldLogger) Option {
	if logger == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
