package log

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, ordered from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Logger is a leveled module logger. *logging.Logger satisfies it.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:-7s} [%{module}]%{color:reset} %{message}`,
)

// Backend state shared by every module logger. The level outlives sink
// changes so verbosity set from the command line survives SetSink.
var (
	mu      sync.Mutex
	level   = Notice
	backend logging.LeveledBackend
)

// New returns the logger for a named module
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink routes all log output to w. Pixel data may be streamed to
// stdout, so the sink defaults to stderr.
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(level.toLogging(), "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every module
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	level = l
	backend.SetLevel(l.toLogging(), "")
}

// GetLevel returns the current verbosity
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

func (l Level) toLogging() logging.Level {
	switch l {
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
	SetSink(os.Stderr)
}
