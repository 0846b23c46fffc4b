//go:build !windows

package plot

import (
	tm "github.com/nsf/termbox-go"
)

type plotter struct {
}

func (p plotter) HideCursor() {
	tm.SetCursor(0, 0)
}

func (p plotter) BlockWindowResize() {
}
