package testutils

import (
	"bytes"
	"io"
	"net"
	"os"
	"runtime"
	"sync"
	"time"
)

// Step is one scripted result of a Read call on a ConnectionMock.
type Step struct {
	Data string // Bytes delivered by the read, possibly over several calls
	Err  error  // Returned once Data is exhausted, if set

	// Block makes the read wait until the read deadline is moved into the
	// past, then fail with os.ErrDeadlineExceeded.
	Block bool
}

// Timeout is a step that fails immediately with os.ErrDeadlineExceeded.
var Timeout = Step{Err: os.ErrDeadlineExceeded}

// Chunks turns each string into a separate read.
func Chunks(chunks ...string) []Step {
	steps := make([]Step, len(chunks))
	for i, c := range chunks {
		steps[i] = Step{Data: c}
	}
	return steps
}

// ConnectionMock is a mock implementation of net.Conn for testing.
// Reads replay a script of steps, writes are captured.
type ConnectionMock struct {
	mu       sync.Mutex
	cond     *sync.Cond
	steps    []Step
	writeBuf bytes.Buffer
	closed   bool
	deadline time.Time

	// SlowWrites writes one byte at a time, yielding in between, so that
	// unsynchronized concurrent writers interleave.
	SlowWrites bool

	// WriteErr is returned by every Write when set.
	WriteErr error
}

// NewConnectionMock creates a mock connection delivering each response
// string as a separate read, then io.EOF.
func NewConnectionMock(responseData ...string) *ConnectionMock {
	return NewScriptedConnectionMock(Chunks(responseData...)...)
}

// NewScriptedConnectionMock creates a mock connection replaying steps.
func NewScriptedConnectionMock(steps ...Step) *ConnectionMock {
	m := &ConnectionMock{steps: steps}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *ConnectionMock) Read(b []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.steps) == 0 {
		return 0, io.EOF
	}

	step := &m.steps[0]
	if step.Block {
		for m.deadline.IsZero() || time.Now().Before(m.deadline) {
			m.cond.Wait()
		}
		m.steps = m.steps[1:]
		return 0, os.ErrDeadlineExceeded
	}

	if step.Data != "" {
		n := copy(b, step.Data)
		step.Data = step.Data[n:]
		if step.Data == "" && step.Err == nil {
			m.steps = m.steps[1:]
		}
		return n, nil
	}

	err := step.Err
	m.steps = m.steps[1:]
	return 0, err
}

func (m *ConnectionMock) Write(b []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	if !m.SlowWrites {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.writeBuf.Write(b)
	}

	for i := range b {
		m.mu.Lock()
		m.writeBuf.WriteByte(b[i])
		m.mu.Unlock()
		runtime.Gosched()
	}
	return len(b), nil
}

func (m *ConnectionMock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (m *ConnectionMock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *ConnectionMock) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (m *ConnectionMock) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 6667}
}

func (m *ConnectionMock) SetDeadline(t time.Time) error      { return m.SetReadDeadline(t) }
func (m *ConnectionMock) SetWriteDeadline(t time.Time) error { return nil }

func (m *ConnectionMock) SetReadDeadline(t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deadline = t
	m.cond.Broadcast()
	return nil
}

// Written returns the bytes written to the mock connection so far.
func (m *ConnectionMock) Written() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writeBuf.String()
}
