package irc

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pior/irc/wire"
)

// Benchmark Writer.Raw with a single writer
func BenchmarkWriter_Raw(b *testing.B) {
	s, err := NewFromHalves(bytes.NewReader(nil), io.Discard, Config{Logger: quietLogger})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	w := s.Writer()
	ctx := context.Background()
	b.ResetTimer()

	for b.Loop() {
		if err := w.Raw(ctx, "PING :keepalive\r\n"); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark Writer.Raw with concurrent writers sharing the guard
func BenchmarkWriter_RawParallel(b *testing.B) {
	s, err := NewFromHalves(bytes.NewReader(nil), io.Discard, Config{Logger: quietLogger})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	w := s.Writer()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if err := w.Raw(ctx, "PING :keepalive\r\n"); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// Benchmark Writer.Send, which encodes through the codec
func BenchmarkWriter_Send(b *testing.B) {
	s, err := NewFromHalves(bytes.NewReader(nil), io.Discard, Config{Logger: quietLogger})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	w := s.Writer()
	ctx := context.Background()
	b.ResetTimer()

	for b.Loop() {
		if err := w.Send(ctx, wire.PRIVMSG, "#chan", "hello there"); err != nil {
			b.Fatal(err)
		}
	}
}
