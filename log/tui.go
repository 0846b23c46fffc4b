package log

import (
	"context"
	"fmt"

	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/ui/server"
)

// TuiLogger mirrors log records into the terminal UI message panes.
type TuiLogger struct {
	ui     server.ServerUI
	ll     LogLevel
	active bool
}

func NewTuiLogger(ll LogLevel, ui server.ServerUI) *TuiLogger {
	return &TuiLogger{
		ui: ui,
		ll: ll,
	}
}

func (l *TuiLogger) Init(ctx context.Context) {
	l.active = true
	go func() {
		<-ctx.Done()
		l.active = false
	}()
}

func (l *TuiLogger) Error(format string, args ...interface{}) {
	if l.active {
		l.ui.AddErrorMsg(fmt.Sprintf(format, args...))
	}
}

func (l *TuiLogger) Info(format string, args ...interface{}) {
	if l.active {
		l.ui.AddInfoMsg(fmt.Sprintf(format, args...))
	}
}

func (l *TuiLogger) Debug(format string, args ...interface{}) {
	if l.ll == LevelDebug && l.active {
		l.ui.AddInfoMsg(fmt.Sprintf(format, args...))
	}
}

// Results only go to the file and console loggers, the UI panes are for
// operational messages.
func (l *TuiLogger) Result(protocol sockbench.Protocol, remote string, success bool, details interface{}) {
}
