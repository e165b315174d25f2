package observable

// Package observable provides a single-slot value box that broadcasts every
// change to its subscribers. It is meant to be driven from the UI goroutine
// and performs no synchronization of its own.
