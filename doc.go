// Package irc turns a byte-oriented duplex connection into a stream of parsed
// IRC messages, and serializes writes from any number of goroutines back onto
// the connection.
//
// # Reading
//
//	conn, _ := net.Dial("tcp", "irc.libera.chat:6667")
//	stream, _ := irc.New(conn, irc.Config{})
//	defer stream.Close()
//
//	for msg, err := range stream.Messages(ctx) {
//	    if err != nil {
//	        if irc.ShouldCloseConnection(err) {
//	            return err
//	        }
//	        continue // parse errors only affect one line
//	    }
//	    ...
//	}
//
// Messages stops at end of input and after a read failure. The undelimited
// tail of a closed connection is never delivered.
//
// # Writing
//
// Stream.Writer returns a Writer handle. Handles are cheap to copy and every
// clone shares one guard around the outbound half: writes never interleave.
//
//	w := stream.Writer()
//	go func() {
//	    _ = w.Send(ctx, wire.PRIVMSG, "#chan", "hello there")
//	}()
//	_ = w.RawWait("PING :keepalive\r\n") // no terminator is added by Raw
//
// # Encoding
//
// Text crosses a codec.Codec in both directions. Malformed input is dropped
// by default and never reported as an error.
//
// # Errors
//
// Stream and Writer return *StreamError, discriminated by Kind. Parse errors
// are recoverable, timeouts and context cancellation leave the connection
// usable, anything else means the connection should be closed.
package irc
