package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Delimiter terminates every protocol line. A preceding CR is left in the
// line and stripped by Parse.
const Delimiter = '\n'

// DefaultReadBufferSize is the bufio size used by NewLineReader.
const DefaultReadBufferSize = 4096

// LineReader extracts delimiter-terminated lines from a byte source that may
// deliver them in arbitrary fragments.
//
// Bytes are appended to an accumulation buffer chunk by chunk, and consumed
// from the source only after they have been appended. When the source fails
// mid-line (for example a read deadline), the partial line is kept and the
// next ReadLine call resumes where the previous one stopped, so no byte is
// lost or counted twice.
//
// A LineReader is not safe for concurrent use.
type LineReader struct {
	r     *bufio.Reader
	delim byte
	buf   []byte
	done  bool // buf holds a complete line returned by the last call
}

// NewLineReader returns a LineReader splitting r on Delimiter.
func NewLineReader(r io.Reader) *LineReader {
	return NewLineReaderSize(r, DefaultReadBufferSize)
}

// NewLineReaderSize returns a LineReader whose source buffer has at least
// the given size.
func NewLineReaderSize(r io.Reader, size int) *LineReader {
	return &LineReader{
		r:     bufio.NewReaderSize(r, size),
		delim: Delimiter,
	}
}

// ReadLine returns the next line including its delimiter.
//
// The returned slice is only valid until the next call to ReadLine.
// At end of input ReadLine returns io.EOF; an undelimited tail is never
// returned as a line (see Pending). Any other error leaves the partial line
// buffered and the call can be retried.
func (lr *LineReader) ReadLine() ([]byte, error) {
	if lr.done {
		lr.buf = lr.buf[:0]
		lr.done = false
	}

	for {
		chunk, err := lr.fill()
		if err != nil {
			return nil, err
		}
		if len(chunk) == 0 {
			return nil, io.EOF
		}

		used := len(chunk)
		if i := bytes.IndexByte(chunk, lr.delim); i >= 0 {
			used = i + 1
			lr.done = true
		}
		lr.buf = append(lr.buf, chunk[:used]...)
		// Discard cannot fail here: used bytes are already buffered.
		_, _ = lr.r.Discard(used)

		if lr.done {
			return lr.buf, nil
		}
	}
}

// Pending returns the bytes of the line currently being accumulated, that
// is the undelimited tail when ReadLine reported io.EOF or an error.
func (lr *LineReader) Pending() []byte {
	if lr.done {
		return nil
	}
	return lr.buf
}

// fill returns the bytes currently buffered by the source, reading more if
// none are. An empty chunk with a nil error means end of input.
func (lr *LineReader) fill() ([]byte, error) {
	if lr.r.Buffered() == 0 {
		if _, err := lr.r.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}
	return lr.r.Peek(lr.r.Buffered())
}
