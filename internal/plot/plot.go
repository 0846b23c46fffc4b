// Package plot hides the platform quirks of taking over a terminal for
// full-screen rendering.
package plot

type Plotter interface {
	BlockWindowResize()
	HideCursor()
}

// GetPlotter returns the plotter for the build target.
func GetPlotter() Plotter {
	return plotter{}
}
