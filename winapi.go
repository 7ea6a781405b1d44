package main

// windowAPI is the set of OS window primitives vvpin relies on.
type windowAPI interface {
	// Foreground returns the window receiving keyboard input, or 0.
	Foreground() Handle
	// Title is best-effort; an empty string is not an error.
	Title(h Handle) string
	IsWindow(h Handle) bool
	SetTopmost(h Handle) error
	ClearTopmost(h Handle) error
}
