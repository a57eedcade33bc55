package ui

// View represents different UI views
type View int

const (
	ViewPicker View = iota
	ViewCount
	ViewFetching
	ViewResults
	ViewHelp
)
