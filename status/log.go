package status

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// SetLogger installs the process log sink. Intended to be called once at
// process start, before helper packages begin logging.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the current process log sink.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log routes a status to the process log sink. OK statuses are logged at
// debug level so callers can unconditionally hand off outcomes.
func Log(s Status) {
	l := Logger()
	var ev *zerolog.Event
	switch s.Severity {
	case SeverityError:
		ev = l.Error()
	case SeverityWarning, SeverityCancel:
		ev = l.Warn()
	case SeverityInfo:
		ev = l.Info()
	default:
		ev = l.Debug()
	}
	if s.Component != "" {
		ev = ev.Str("component", s.Component)
	}
	if s.Err != nil {
		ev = ev.Err(s.Err)
	}
	msg := s.Message
	if msg == "" && s.Err != nil {
		msg = s.Err.Error()
	}
	ev.Msg(msg)
}

// LogError builds an error status and routes it to the sink.
func LogError(err error, message, component string) {
	Log(NewError(err, message, component))
}

// LogWarning builds a warning status and routes it to the sink.
func LogWarning(err error, message, component string) {
	Log(NewWarning(err, message, component))
}
