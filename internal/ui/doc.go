package ui

// Package ui contains the Fyne user interface: the users list screen, which
// renders rows held in an observable, plus the theme and localized texts.
