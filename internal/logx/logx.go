// Package logx wraps zerolog behind the small leveled API the rest of the
// tool logs through.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level is the minimum severity that gets written.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Fields carries key-value pairs for structured logging.
type Fields map[string]any

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
)

// SetVerbosity maps the CLI -v counter onto levels: 0/1=info, 2=debug, 3+=trace.
func SetVerbosity(v int) {
	switch {
	case v <= 1:
		SetLevel(LevelInfo)
	case v == 2:
		SetLevel(LevelDebug)
	default:
		SetLevel(LevelTrace)
	}
}

// SetLevel changes the minimum logging level.
func SetLevel(l Level) {
	var zlevel zerolog.Level
	switch l {
	case LevelError:
		zlevel = zerolog.ErrorLevel
	case LevelWarn:
		zlevel = zerolog.WarnLevel
	case LevelInfo:
		zlevel = zerolog.InfoLevel
	case LevelDebug:
		zlevel = zerolog.DebugLevel
	case LevelTrace:
		zlevel = zerolog.TraceLevel
	default:
		zlevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zlevel)
}

// SetOutput redirects the logger output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()
}

func event(l Level) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	switch l {
	case LevelError:
		return logger.Error()
	case LevelWarn:
		return logger.Warn()
	case LevelDebug:
		return logger.Debug()
	case LevelTrace:
		return logger.Trace()
	default:
		return logger.Info()
	}
}

// Log writes msg at the given level with optional structured fields.
func Log(l Level, msg string, fields ...Fields) {
	ev := event(l)
	for _, f := range fields {
		for k, v := range f {
			ev = ev.Interface(k, v)
		}
	}
	ev.Msg(msg)
}

func Errorf(format string, a ...any) { Log(LevelError, fmt.Sprintf(format, a...)) }
func Warnf(format string, a ...any)  { Log(LevelWarn, fmt.Sprintf(format, a...)) }
func Infof(format string, a ...any)  { Log(LevelInfo, fmt.Sprintf(format, a...)) }
func Debugf(format string, a ...any) { Log(LevelDebug, fmt.Sprintf(format, a...)) }
func Tracef(format string, a ...any) { Log(LevelTrace, fmt.Sprintf(format, a...)) }
