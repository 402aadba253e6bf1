// SPDX-License-Identifier: MIT

// Package render connects generation updates to anything that draws them.
//
// A Renderer exposes the primitive drawing operations a front end needs.
// Listener turns a Renderer into an event.Listener that translates each
// event.Update into the matching calls, so generators stay unaware of how,
// or whether, they are drawn.
//
// LogRenderer is the built-in Renderer: it writes every call to a logrus
// logger and sleeps between steps, which gives a readable trace of a
// generator at work.
package render
