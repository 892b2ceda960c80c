package wire

import (
	"bytes"
	"io"
	"testing"
)

// Benchmark Parse with a tagged PRIVMSG
func BenchmarkParse_Privmsg(b *testing.B) {
	line := "@time=2024-01-01T00:00:00Z :nick!user@host PRIVMSG #chan :hello there\r\n"
	b.ResetTimer()

	for b.Loop() {
		if _, err := Parse(line); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Parse with a numeric reply
func BenchmarkParse_Numeric(b *testing.B) {
	line := ":irc.example.com 001 nick :Welcome to IRC\r\n"
	b.ResetTimer()

	for b.Loop() {
		if _, err := Parse(line); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark WriteMessage with middle and trailing arguments
func BenchmarkWriteMessage(b *testing.B) {
	msg := NewMessage(PRIVMSG, "#chan", "hello there")
	b.ResetTimer()

	for b.Loop() {
		if err := WriteMessage(io.Discard, msg); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark LineReader over a buffer of 100 lines
func BenchmarkLineReader(b *testing.B) {
	data := bytes.Repeat([]byte(":nick!user@host PRIVMSG #chan :hello there\r\n"), 100)
	r := bytes.NewReader(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for b.Loop() {
		r.Reset(data)
		lr := NewLineReader(r)
		for {
			if _, err := lr.ReadLine(); err != nil {
				if err != io.EOF {
					b.Fatal(err)
				}
				break
			}
		}
	}
}
