// SPDX-License-Identifier: MIT

// Package event carries incremental maze-generation updates to at most one
// listener.
//
// Generators report each step as an Update and hand it to a Dispatcher. The
// Dispatcher calls the registered Listener synchronously and contains its
// failures: a returned error or a panic is logged through logrus and never
// reaches the generator, so a broken renderer cannot abort or corrupt
// generation.
//
// Listeners run inline on the generating goroutine; long-running listener
// code stalls the step that emitted the update.
package event
