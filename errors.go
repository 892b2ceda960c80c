package irc

import (
	"context"
	"errors"
	"net"
	"os"

	"github.com/pior/irc/wire"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrWriterClosed = errors.New("irc: writer closed")
)

// ErrorKind tells which stage of the stream failed.
type ErrorKind uint8

const (
	// KindParse: a received line could not be parsed. Err is a *wire.ParseError.
	KindParse ErrorKind = iota + 1
	// KindRead: the inbound half failed.
	KindRead
	// KindWrite: the outbound half failed, or the write could not be started.
	KindWrite
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// StreamError is the single error type returned by Stream and Writer.
// Callers can switch on Kind without knowing the transport's error types;
// errors.Is and errors.As see through to Err.
type StreamError struct {
	Kind ErrorKind
	Err  error
}

func (e *StreamError) Error() string {
	if e.Kind == KindParse {
		return "irc: " + e.Err.Error()
	}
	return "irc: " + e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for error chain inspection
func (e *StreamError) Unwrap() error {
	return e.Err
}

// ShouldCloseConnection reports whether the transport is unusable.
//
// Parse errors only affect one line. Timeouts, context cancellation and an
// open circuit breaker leave the transport intact. Any other read or write
// failure means the connection is broken.
func (e *StreamError) ShouldCloseConnection() bool {
	if e.Kind == KindParse {
		return false
	}
	return !isRecoverable(e.Err)
}

// ShouldCloseConnection is a helper function to determine if an error
// requires closing the connection.
//
// Returns false for nil, parse errors, timeouts, context errors and
// circuit breaker rejections. Unknown errors are treated conservatively and
// return true.
func ShouldCloseConnection(err error) bool {
	if err == nil {
		return false
	}

	var e *StreamError
	if errors.As(err, &e) {
		return e.ShouldCloseConnection()
	}

	var perr *wire.ParseError
	if errors.As(err, &perr) {
		return false
	}

	return !isRecoverable(err)
}

func isRecoverable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}
	var invalid *wire.InvalidMessageError
	if errors.As(err, &invalid) {
		return true
	}
	return isTimeout(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
