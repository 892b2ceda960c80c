// Package wire implements the IRC line protocol: framing, parsing and
// serialization of messages, without any connection management.
//
// # Core Types
//
//   - Code: a command, numeric reply or numeric error from the generated table
//   - Prefix: the origin of a message, ServerPrefix or UserPrefix
//   - Message: tags, prefix, code, verbatim command and arguments
//   - LineReader: incremental extraction of '\n' terminated lines
//
// # Parsing
//
//	lr := wire.NewLineReader(conn)
//	for {
//	    line, err := lr.ReadLine()
//	    if err != nil {
//	        return err // io.EOF on clean close
//	    }
//	    msg, err := wire.Parse(string(line))
//	    if err != nil {
//	        continue // a *ParseError only affects this line
//	    }
//	    if msg.Code == wire.PING {
//	        wire.WriteMessage(conn, wire.NewMessage(wire.PONG, msg.Args...))
//	    }
//	}
//
// Unknown commands parse successfully with Code set to Unknown and the
// token preserved in Message.Command.
//
// # Code Table
//
// The table is generated from codes.txt by internal/gencodes. Codes named
// RPL_* report IsReply, codes named ERR_* report IsError. Regenerate with:
//
//	go generate ./wire
//
// # Thread Safety
//
// Code, Parse and WriteMessage are safe for concurrent use. Message values and
// LineReader are not.
package wire
