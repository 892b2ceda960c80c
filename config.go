package irc

import (
	"log/slog"

	"github.com/pior/irc/codec"
	"github.com/pior/irc/wire"
	"github.com/sony/gobreaker/v2"
)

// DefaultName labels connections in logs when Config.Name is empty.
const DefaultName = "irc"

// Config holds configuration for a Stream and its Writer.
// The zero value is usable.
type Config struct {
	// Name labels the connection in logs and names its circuit breaker.
	// Default: "irc".
	Name string

	// Codec converts between wire bytes and text in both directions.
	// Default: codec.UTF8 (malformed input dropped).
	Codec codec.Codec

	// ReadBufferSize is the size of the buffer over the inbound half.
	// Lines longer than the buffer are still read whole.
	// Default: wire.DefaultReadBufferSize.
	ReadBufferSize int

	// Logger receives debug logs for every line and write, and warnings for
	// parse and write failures. Default: slog.Default().
	Logger *slog.Logger

	// NewCircuitBreaker creates the circuit breaker guarding writes.
	// Called once per Stream with the connection name.
	// If nil, no circuit breaker is used.
	NewCircuitBreaker func(name string) *gobreaker.CircuitBreaker[int]
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Codec == nil {
		c.Codec = codec.UTF8
	}
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = wire.DefaultReadBufferSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
