package log

import (
	"time"

	"github.com/sockbench/sockbench/sockbench"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

type Message struct {
	Timestamp string
	Level     LogLevel
	Message   string
}

func NewMessage(ll LogLevel, msg string) Message {
	return Message{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     ll,
		Message:   msg,
	}
}

// ResultLog is one benchmark outcome bound to the address it ran against.
// The metrics exporter tails these records from the JSON log file.
type ResultLog struct {
	Timestamp string
	Protocol  string
	Remote    string
	Success   bool
	Details   interface{}
}

func NewResultLog(protocol sockbench.Protocol, remote string, success bool, details interface{}) ResultLog {
	return ResultLog{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Protocol:  protocol.String(),
		Remote:    remote,
		Success:   success,
		Details:   details,
	}
}

// Logger is the full logging surface used by the orchestration layer. Core
// packages depend on the narrower sockbench.Logger instead.
type Logger interface {
	sockbench.Logger
	Result(protocol sockbench.Protocol, remote string, success bool, details interface{})
}
