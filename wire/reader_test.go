package wire

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pior/irc/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = ":irc.example.com 001 nick :Welcome to IRC\r\n" +
	"PING :irc.example.com\r\n" +
	"\r\n" +
	":nick!user@host PRIVMSG #chan :hello there\n" +
	"FOOBAR arg1\r\n"

// readAll collects every line until ReadLine fails.
func readAll(t *testing.T, lr *LineReader) ([]string, error) {
	t.Helper()
	var lines []string
	for {
		line, err := lr.ReadLine()
		if err != nil {
			return lines, err
		}
		lines = append(lines, string(line))
	}
}

func splitEvery(s string, n int) []string {
	var chunks []string
	for len(s) > n {
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	return append(chunks, s)
}

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader(sampleInput))
	lines, err := readAll(t, lr)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{
		":irc.example.com 001 nick :Welcome to IRC\r\n",
		"PING :irc.example.com\r\n",
		"\r\n",
		":nick!user@host PRIVMSG #chan :hello there\n",
		"FOOBAR arg1\r\n",
	}, lines)
}

func TestLineReaderChunkingInvariance(t *testing.T) {
	want, err := readAll(t, NewLineReader(strings.NewReader(sampleInput)))
	require.ErrorIs(t, err, io.EOF)

	for size := 1; size <= len(sampleInput); size++ {
		conn := testutils.NewConnectionMock(splitEvery(sampleInput, size)...)
		got, err := readAll(t, NewLineReader(conn))
		require.ErrorIs(t, err, io.EOF, "chunk size %d", size)
		require.Equal(t, want, got, "chunk size %d", size)
	}

	got, err := readAll(t, NewLineReader(iotest.OneByteReader(strings.NewReader(sampleInput))))
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, want, got)
}

func TestLineReaderSmallBuffer(t *testing.T) {
	long := strings.Repeat("x", 100) + "\n"
	lr := NewLineReaderSize(strings.NewReader(long+"short\n"), 16)

	lines, err := readAll(t, lr)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []string{long, "short\n"}, lines)
}

func TestLineReaderResumesAfterTimeout(t *testing.T) {
	conn := testutils.NewScriptedConnectionMock(
		testutils.Step{Data: "PING :a"},
		testutils.Timeout,
		testutils.Step{Data: "bc\r\nPI"},
		testutils.Timeout,
		testutils.Timeout,
		testutils.Step{Data: "NG :d\r\n"},
	)
	lr := NewLineReader(conn)

	_, err := lr.ReadLine()
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	assert.Equal(t, "PING :a", string(lr.Pending()))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "PING :abc\r\n", string(line))
	assert.Nil(t, lr.Pending())

	for range 2 {
		_, err = lr.ReadLine()
		require.ErrorIs(t, err, os.ErrDeadlineExceeded)
		assert.Equal(t, "PI", string(lr.Pending()))
	}

	line, err = lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "PING :d\r\n", string(line))

	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderUndelimitedTail(t *testing.T) {
	lr := NewLineReader(testutils.NewConnectionMock("PING :a\r\n", "PING :no-terminator"))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "PING :a\r\n", string(line))

	line, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Nil(t, line)
	assert.Equal(t, "PING :no-terminator", string(lr.Pending()))

	// Still at end of input.
	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineReaderReadError(t *testing.T) {
	boom := errors.New("connection reset")
	lr := NewLineReader(testutils.NewScriptedConnectionMock(
		testutils.Step{Data: "PING :a\r\nPART", Err: boom},
	))

	line, err := lr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "PING :a\r\n", string(line))

	_, err = lr.ReadLine()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "PART", string(lr.Pending()))
}

func TestLineReaderEmptyInput(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))
	_, err := lr.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, lr.Pending())
}
