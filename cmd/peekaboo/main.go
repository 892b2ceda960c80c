// Command peekaboo connects to an IRC server, joins a channel, says hello
// and quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pior/irc"
	"github.com/pior/irc/codec"
	"github.com/pior/irc/wire"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	server   string
	channel  string
	nick     string
	encoding string
	debug    bool
	metrics  string
}

func main() {
	config := Config{}
	flag.StringVar(&config.server, "server", "irc.libera.chat:6667", "IRC server address")
	flag.StringVar(&config.channel, "channel", "", "channel to join (required)")
	flag.StringVar(&config.nick, "nick", "peekaboo", "nickname")
	flag.StringVar(&config.encoding, "encoding", "utf-8", "character encoding label (utf-8, latin1, windows-1251, ...)")
	flag.BoolVar(&config.debug, "debug", false, "log every line sent and received")
	flag.StringVar(&config.metrics, "metrics-addr", "", "serve Prometheus metrics on this address (disabled if empty)")
	flag.Parse()

	if config.channel == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -channel <CHANNEL> [-server host:port]\n", os.Args[0])
		os.Exit(2)
	}

	level := slog.LevelInfo
	if config.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		logger.Error("peekaboo: stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config Config, logger *slog.Logger) error {
	cdc, err := codec.Lookup(config.encoding, codec.Ignore)
	if err != nil {
		return err
	}

	dialer := net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, "tcp", config.server)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", config.server, err)
	}

	stream, err := irc.New(conn, irc.Config{
		Name:              config.server,
		Codec:             cdc,
		Logger:            logger,
		NewCircuitBreaker: irc.NewCircuitBreakerConfig(1, time.Minute, 30*time.Second),
	})
	if err != nil {
		conn.Close()
		return err
	}
	defer stream.Close()

	if config.metrics != "" {
		srv := serveMetrics(config.metrics, newStreamCollector(config.server, stream.Stats), logger)
		defer srv.Close()
	}

	logger.Info("peekaboo: connected", "server", config.server, "nick", config.nick)
	return newBot(config, stream.Writer(), logger).serve(ctx, stream)
}

func serveMetrics(addr string, collector prometheus.Collector, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler(collector))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("peekaboo: metrics server failed", "addr", addr, "error", err)
		}
	}()
	return srv
}

type bot struct {
	config Config
	writer irc.Writer
	logger *slog.Logger
}

func newBot(config Config, w irc.Writer, logger *slog.Logger) *bot {
	return &bot{config: config, writer: w, logger: logger}
}

// serve registers, then handles messages until the server closes the
// connection or ctx is canceled.
func (b *bot) serve(ctx context.Context, stream *irc.Stream) error {
	if err := b.writer.Send(ctx, wire.USER, b.config.nick, "8", "*", b.config.nick); err != nil {
		return err
	}
	if err := b.writer.Send(ctx, wire.NICK, b.config.nick); err != nil {
		return err
	}

	for msg, err := range stream.Messages(ctx) {
		if err != nil {
			if irc.ShouldCloseConnection(err) {
				return err
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			b.logger.Warn("peekaboo: skipping line", "error", err)
			continue
		}
		if err := b.handle(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (b *bot) handle(ctx context.Context, msg *wire.Message) error {
	switch msg.Code {
	case wire.PING:
		return b.writer.Send(ctx, wire.PONG, msg.Args...)

	case wire.RPL_WELCOME:
		return b.writer.Send(ctx, wire.JOIN, b.config.channel)

	case wire.ERR_NICKNAMEINUSE:
		b.config.nick += "_"
		return b.writer.Send(ctx, wire.NICK, b.config.nick)

	case wire.JOIN:
		if msg.Nick() != b.config.nick {
			return nil
		}
		b.logger.Info("peekaboo: joined", "channel", b.config.channel)
		if err := b.writer.Send(ctx, wire.PRIVMSG, b.config.channel, b.config.nick); err != nil {
			return err
		}
		return b.writer.Send(ctx, wire.QUIT, b.config.nick)

	default:
		if msg.Code.IsError() {
			b.logger.Warn("peekaboo: server error", "code", msg.Code.Name(), "message", msg.Trailing())
		}
	}
	return nil
}
