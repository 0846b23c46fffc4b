package server

import (
	"context"
	"fmt"
	"time"

	echoserver "github.com/sockbench/sockbench/server"

	"github.com/sockbench/sockbench/internal/stats"
)

// ServerUI renders the standalone echo server's activity. Paint is called
// once per second with the elapsed seconds since the previous paint.
type ServerUI interface {
	Paint(seconds uint64)
	AddInfoMsg(string)
	AddErrorMsg(string)
}

type UI struct {
	Terminal ServerUI
	isTui    bool
}

// NewUI builds the terminal UI when requested and possible, otherwise the
// plain line-oriented fallback.
func NewUI(terminalUI bool, counters *echoserver.Counters, watcher *stats.Watcher) *UI {
	var ui ServerUI
	var err error

	if terminalUI {
		ui, err = InitTui(counters, watcher)
		if err != nil {
			fmt.Println("Error: Failed to initialize UI.", err)
			fmt.Println("Using command line view instead of UI")
		}
	}

	if ui == nil {
		terminalUI = false
		ui = InitRawUI(counters)
	}

	return &UI{
		Terminal: ui,
		isTui:    terminalUI,
	}
}

func (u *UI) Display(ctx context.Context) {
	go func() {
		paintTicker := time.NewTicker(time.Second)
		defer paintTicker.Stop()
		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case <-paintTicker.C:
				seconds := uint64(time.Since(start).Seconds())
				if seconds == 0 {
					seconds = 1
				}
				u.Terminal.Paint(seconds)
				start = time.Now()
			}
		}
	}()
}
