package irc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/pior/irc/codec"
	"github.com/pior/irc/internal"
	"github.com/pior/irc/wire"
	"github.com/sony/gobreaker/v2"
)

// Typical line is well under the 512 bytes allowed by RFC 1459.
var messageBuffers = internal.NewBufferPool(512)

// Writer sends text over the outbound half of a connection.
//
// A Writer is a cheap handle: copies and clones share the same outbound half
// and the same guard, so at most one write is in flight at any time and the
// bytes of one write are never interleaved with another. No ordering is
// guaranteed between writes from different goroutines.
//
// The zero Writer is closed.
type Writer struct {
	out *outbound
}

// outbound owns the write half. The guard is a pool holding exactly one
// resource, the write half itself: acquiring it is the mutual exclusion.
type outbound struct {
	name    string
	guard   *puddle.Pool[io.Writer]
	codec   codec.Codec
	breaker *gobreaker.CircuitBreaker[int]
	logger  *slog.Logger
	stats   writerStatsCollector
}

type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

func newOutbound(w io.Writer, config Config) (*outbound, error) {
	guard, err := puddle.NewPool(&puddle.Config[io.Writer]{
		Constructor: func(context.Context) (io.Writer, error) {
			return w, nil
		},
		// The transport is closed by Stream.Close, not by the guard.
		Destructor: func(io.Writer) {},
		MaxSize:    1,
	})
	if err != nil {
		return nil, err
	}

	out := &outbound{
		name:   config.Name,
		guard:  guard,
		codec:  config.Codec,
		logger: config.Logger,
	}
	if config.NewCircuitBreaker != nil {
		out.breaker = config.NewCircuitBreaker(config.Name)
	}
	return out, nil
}

// Clone returns another handle to the same outbound half.
func (w Writer) Clone() Writer {
	return w
}

// Raw encodes msg with the connection codec and writes it.
// No line terminator is added: msg must end with "\r\n" (or "\n").
//
// Raw waits for the guard until ctx is done. Once the write has started it
// is not interrupted by cancellation, only bounded by the ctx deadline when
// the transport supports write deadlines. Either every encoded byte is
// written or an error is returned; the guard is released in both cases.
func (w Writer) Raw(ctx context.Context, msg string) error {
	if w.out == nil {
		return &StreamError{Kind: KindWrite, Err: ErrWriterClosed}
	}
	return w.out.send(ctx, w.out.codec.Encode(msg))
}

// RawWait is Raw for callers without a context. It blocks until the write
// completes or fails.
func (w Writer) RawWait(msg string) error {
	return w.Raw(context.Background(), msg)
}

// WriteMessage validates and serializes msg, appends CRLF and writes it.
// An invalid message returns a *wire.InvalidMessageError and writes nothing.
func (w Writer) WriteMessage(ctx context.Context, msg *wire.Message) error {
	buf := messageBuffers.Get()
	defer messageBuffers.Put(buf)

	if err := wire.WriteMessage(buf, msg); err != nil {
		return &StreamError{Kind: KindWrite, Err: err}
	}
	return w.Raw(ctx, buf.String())
}

// Send writes a message built from a known code and its arguments.
// The last argument is sent as a trailing argument when needed.
func (w Writer) Send(ctx context.Context, code wire.Code, args ...string) error {
	return w.WriteMessage(ctx, wire.NewMessage(code, args...))
}

// Stats returns the statistics shared by every clone of this Writer.
func (w Writer) Stats() WriterStats {
	if w.out == nil {
		return WriterStats{}
	}
	return w.out.snapshot()
}

func (o *outbound) send(ctx context.Context, b []byte) error {
	var err error
	if o.breaker != nil {
		_, err = o.breaker.Execute(func() (int, error) {
			return o.write(ctx, b)
		})
	} else {
		_, err = o.write(ctx, b)
	}

	if err != nil {
		o.stats.recordError()
		o.logger.Warn("irc: write failed", "name", o.name, "bytes", len(b), "error", err)
		return &StreamError{Kind: KindWrite, Err: err}
	}
	return nil
}

// write holds the guard for the duration of one transport write.
func (o *outbound) write(ctx context.Context, b []byte) (int, error) {
	res, err := o.guard.Acquire(ctx)
	if err != nil {
		if errors.Is(err, puddle.ErrClosedPool) {
			return 0, ErrWriterClosed
		}
		return 0, err
	}
	defer res.Release()

	conn := res.Value()
	if d, ok := conn.(writeDeadliner); ok {
		deadline, _ := ctx.Deadline()
		_ = d.SetWriteDeadline(deadline)
	}

	n, err := conn.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, err
	}

	o.stats.recordWrite(n, time.Now())
	o.logger.Debug("irc: sent", "name", o.name, "bytes", n)
	return n, nil
}

func (o *outbound) snapshot() WriterStats {
	s := o.stats.snapshot()

	st := o.guard.Stat()
	s.AcquireCount = uint64(st.AcquireCount())
	s.AcquireWaitCount = uint64(st.EmptyAcquireCount())
	s.CanceledAcquires = uint64(st.CanceledAcquireCount())
	s.AcquireWaitTimeNs = uint64(st.EmptyAcquireWaitTime().Nanoseconds())

	if o.breaker != nil {
		s.CircuitBreakerState = o.breaker.State()
		s.CircuitBreakerCounts = o.breaker.Counts()
	}
	return s
}

// close waits for an in-flight write, then makes every further write fail
// with ErrWriterClosed.
func (o *outbound) close() {
	o.guard.Close()
}
