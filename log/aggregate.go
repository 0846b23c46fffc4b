package log

import (
	"github.com/sockbench/sockbench/sockbench"
)

// AggregateLogger fans every record out to all wrapped loggers, typically a
// console logger plus the JSON file logger.
type AggregateLogger struct {
	loggers []Logger
}

func NewAggregateLogger(loggers ...Logger) *AggregateLogger {
	return &AggregateLogger{loggers: loggers}
}

func (l *AggregateLogger) Error(format string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Error(format, args...)
	}
}

func (l *AggregateLogger) Info(format string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Info(format, args...)
	}
}

func (l *AggregateLogger) Debug(format string, args ...interface{}) {
	for _, logger := range l.loggers {
		logger.Debug(format, args...)
	}
}

func (l *AggregateLogger) Result(protocol sockbench.Protocol, remote string, success bool, details interface{}) {
	for _, logger := range l.loggers {
		logger.Result(protocol, remote, success, details)
	}
}
