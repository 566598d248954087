// Package log provides named, leveled loggers for the renderer and CLI.
package log

import (
	"os"

	"github.com/op/go-logging"
)

// Level selects logger verbosity for SetLevel.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Logger is the leveled logging surface the rest of the module uses.
type Logger interface {
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var backend logging.LeveledBackend

// New returns the logger for the named module. Verbosity is controlled
// globally through SetLevel.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetLevel adjusts verbosity for all module loggers at once.
func SetLevel(level Level) {
	backend.SetLevel(backendLevel(level), "")
}

func backendLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	format := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`,
	)
	sink := logging.NewLogBackend(os.Stderr, "", 0)
	backend = logging.AddModuleLevel(logging.NewBackendFormatter(sink, format))
	logging.SetBackend(backend)
	SetLevel(Notice)
}
