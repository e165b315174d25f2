package dispatch

import (
	"fyne.io/fyne/v2"
)

// Dispatcher runs functions on its execution context. Do never waits for fn.
type Dispatcher interface {
	Do(fn func())
}

// Fyne posts work onto the Fyne UI goroutine
type Fyne struct{}

// NewFyne returns a dispatcher backed by fyne.Do
func NewFyne() Fyne {
	return Fyne{}
}

// Do schedules fn on the UI goroutine
func (Fyne) Do(fn func()) {
	fyne.Do(fn)
}

// Func adapts a plain function to Dispatcher
type Func func(fn func())

// Do calls f(fn)
func (f Func) Do(fn func()) {
	f(fn)
}
