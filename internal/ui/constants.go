package ui

// Row sizing for the users list
const (
	RowInnerPadding float32 = 12
	RowTextSize     float32 = 16
)
