package dispatch

// Package dispatch posts work onto a single designated execution context: the
// Fyne UI goroutine in the app, or a one-worker task queue elsewhere.
