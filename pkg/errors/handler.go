package errors

import (
	"sync"
	"time"
)

// DebugMode controls how contract violations are signaled. When true,
// Assert panics at the offending call. When false, violations are only
// reported to the global handler and execution continues with neutral
// values.
var DebugMode = false

// SetDebugMode enables or disables debug mode.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Handler receives errors reported through this package.
type Handler interface {
	HandleError(err *Error)
}

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Reportf constructs an Error and sends it to the global handler.
func Reportf(op string, kind ErrorKind, format string, args ...any) {
	Report(New(op, kind, format, args...))
}

// Assert checks a programming contract. When cond is false, the violation
// is reported as a KindContract error; in debug mode it additionally
// panics. Returns cond so callers can bail out with a neutral value:
//
//	if !errors.Assert(ok, "animation.Follow.Property", "no interpolator for %v", p) {
//		return ScalarValue(0)
//	}
func Assert(cond bool, op, format string, args ...any) bool {
	if cond {
		return true
	}
	err := New(op, KindContract, format, args...)
	Report(err)
	if DebugMode {
		panic(err)
	}
	return false
}
