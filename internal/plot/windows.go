//go:build windows

package plot

import (
	tm "github.com/nsf/termbox-go"
	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procGetSystemMenu    = user32.NewProc("GetSystemMenu")
	procDeleteMenu       = user32.NewProc("DeleteMenu")
)

type plotter struct {
}

func (p plotter) HideCursor() {
	tm.HideCursor()
}

const (
	mfByCommand = 0x00000000
	scMaximize  = 0xF030
	scSize      = 0xF000
)

// BlockWindowResize removes the resize and maximize entries from the
// console window menu so the termbox layout cannot be invalidated mid-run.
func (p plotter) BlockWindowResize() {
	h, _, _ := procGetConsoleWindow.Call()
	if h == 0 {
		return
	}

	sysMenu, _, _ := procGetSystemMenu.Call(h, 0)
	if sysMenu == 0 {
		return
	}

	procDeleteMenu.Call(sysMenu, scMaximize, mfByCommand)
	procDeleteMenu.Call(sysMenu, scSize, mfByCommand)
}
