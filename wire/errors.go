package wire

import "strconv"

// ParseError is returned when a line cannot be decomposed into a Message.
// It only affects the offending line: the next line can be parsed normally.
//
// Common causes:
//   - Empty or whitespace-only line
//   - Prefix or tags without a command token
type ParseError struct {
	Message string
	Line    string // The offending line, without its terminator
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return "parse error: " + e.Message
	}
	return "parse error: " + e.Message + ": " + quoteLine(e.Line)
}

// InvalidMessageError is returned by WriteMessage when a message cannot be
// represented on the wire. Nothing is written when this error is returned.
//
// Common causes:
//   - Missing command
//   - Space or leading ':' in an argument that is not the last one
//   - CR, LF or NUL in any field
type InvalidMessageError struct {
	Message string
}

func (e *InvalidMessageError) Error() string {
	return "invalid message: " + e.Message
}

const maxQuotedLine = 64

func quoteLine(line string) string {
	if len(line) > maxQuotedLine {
		line = line[:maxQuotedLine] + "..."
	}
	return strconv.Quote(line)
}
