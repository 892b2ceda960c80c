package irc

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pior/irc/codec"
	"github.com/pior/irc/wire"
)

// Stream reads IRC messages from the inbound half of a connection and hands
// out Writers for the outbound half.
//
// Next and Messages must be called from a single goroutine. Writers obtained
// from the Stream may be used from any goroutine, concurrently with reading.
type Stream struct {
	name    string
	inbound io.Reader
	closer  io.Closer
	lines   *wire.LineReader
	codec   codec.Codec
	logger  *slog.Logger
	writer  Writer
	stats   streamStatsCollector

	done      bool // inbound half is exhausted or broken
	closeOnce sync.Once
	closeErr  error
}

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// A read deadline in the past interrupts a pending read immediately.
var aLongTimeAgo = time.Unix(1, 0)

// New creates a Stream over a bidirectional connection such as a net.Conn.
// If conn implements io.Closer, Close closes it.
func New(conn io.ReadWriter, config Config) (*Stream, error) {
	s, err := NewFromHalves(conn, conn, config)
	if err != nil {
		return nil, err
	}
	if c, ok := conn.(io.Closer); ok {
		s.closer = c
	}
	return s, nil
}

// NewFromHalves creates a Stream from separate inbound and outbound halves.
// The halves are not closed by Close.
func NewFromHalves(r io.Reader, w io.Writer, config Config) (*Stream, error) {
	config = config.withDefaults()

	out, err := newOutbound(w, config)
	if err != nil {
		return nil, err
	}

	return &Stream{
		name:    config.Name,
		inbound: r,
		lines:   wire.NewLineReaderSize(r, config.ReadBufferSize),
		codec:   config.Codec,
		logger:  config.Logger,
		writer:  Writer{out: out},
	}, nil
}

// Writer returns a handle on the outbound half. Every call returns a clone
// sharing the same guard.
func (s *Stream) Writer() Writer {
	return s.writer.Clone()
}

// Next returns the next message.
//
// A line that does not parse is reported as a *StreamError of KindParse and
// the stream stays usable. At end of input Next returns io.EOF, discarding an
// unterminated tail. A read failure is returned once as a *StreamError of
// KindRead; subsequent calls return io.EOF. Timeouts are the exception: they
// are returned but leave the stream usable, with any partial line kept.
//
// When ctx can be canceled and the inbound half supports read deadlines,
// Next sets and clears the read deadline around each read: a canceled ctx
// interrupts the read and Next returns the context error, without losing
// buffered bytes. Otherwise ctx is only checked before reading.
func (s *Stream) Next(ctx context.Context) (*wire.Message, error) {
	if s.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, &StreamError{Kind: KindRead, Err: err}
	}

	line, err := s.readLine(ctx)
	if err != nil {
		return nil, s.readFailed(ctx, err)
	}

	s.stats.recordLine(len(line), time.Now())
	text := s.codec.Decode(line)

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug("irc: received", "name", s.name, "line", strings.TrimRight(text, "\r\n"))
	}

	msg, err := wire.Parse(text)
	if err != nil {
		s.stats.recordParseError()
		s.logger.Warn("irc: failed to parse line", "name", s.name, "error", err)
		return nil, &StreamError{Kind: KindParse, Err: err}
	}
	return msg, nil
}

// Messages returns an iterator over the stream's messages.
//
// Parse errors are yielded and iteration continues. Iteration stops at end
// of input, after yielding any other error, or when the caller breaks out.
func (s *Stream) Messages(ctx context.Context) iter.Seq2[*wire.Message, error] {
	return func(yield func(*wire.Message, error) bool) {
		for {
			msg, err := s.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(msg, err) {
				return
			}
			if err != nil && !isParseError(err) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the stream's statistics, writer included.
func (s *Stream) Stats() StreamStats {
	stats := s.stats.snapshot()
	stats.Writer = s.writer.Stats()
	return stats
}

// Close closes the transport, when the Stream owns it, then the outbound
// half: every Writer clone fails with ErrWriterClosed afterwards. A write in
// flight is allowed to finish. Close is idempotent.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		if s.closer != nil {
			s.closeErr = s.closer.Close()
		}
		s.writer.out.close()
		s.logger.Debug("irc: stream closed", "name", s.name)
	})
	return s.closeErr
}

func (s *Stream) readLine(ctx context.Context) ([]byte, error) {
	d, ok := s.inbound.(readDeadliner)
	if !ok || ctx.Done() == nil {
		return s.lines.ReadLine()
	}

	deadline, _ := ctx.Deadline()
	_ = d.SetReadDeadline(deadline)

	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		_ = d.SetReadDeadline(aLongTimeAgo)
		close(interrupted)
	})

	line, err := s.lines.ReadLine()

	// The deadline must not be cleared before the interrupt has been set.
	if !stop() {
		<-interrupted
	}
	_ = d.SetReadDeadline(time.Time{})

	return line, err
}

func (s *Stream) readFailed(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		s.done = true
		if pending := s.lines.Pending(); len(pending) > 0 {
			s.logger.Debug("irc: discarding unterminated line", "name", s.name, "bytes", len(pending))
		}
		return io.EOF
	}

	if isTimeout(err) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &StreamError{Kind: KindRead, Err: ctxErr}
		}
		// The read deadline equals the ctx deadline and can fire before the
		// ctx timer does.
		if dl, ok := ctx.Deadline(); ok && !time.Now().Before(dl) {
			return &StreamError{Kind: KindRead, Err: context.DeadlineExceeded}
		}
		return &StreamError{Kind: KindRead, Err: err}
	}

	s.done = true
	s.logger.Error("irc: read failed", "name", s.name, "error", err)
	return &StreamError{Kind: KindRead, Err: err}
}

func isParseError(err error) bool {
	var e *StreamError
	return errors.As(err, &e) && e.Kind == KindParse
}
