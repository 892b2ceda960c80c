package wire

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Message is a single parsed protocol line.
//
// Args preserves wire order. Only the last argument may contain spaces.
type Message struct {
	// Tags holds IRCv3 message tags. Nil when the line had none.
	Tags map[string]string

	// Prefix is nil when the line did not start with ':'.
	Prefix Prefix

	// Code is the table entry for Command, Unknown if the table has none.
	Code Code

	// Command is the verbatim command token.
	Command string

	Args []string
}

// NewMessage builds an outbound message for a known code.
func NewMessage(code Code, args ...string) *Message {
	return &Message{
		Code:    code,
		Command: code.Token(),
		Args:    args,
	}
}

// Trailing returns the last argument, or "" when there are no arguments.
func (m *Message) Trailing() string {
	if len(m.Args) == 0 {
		return ""
	}
	return m.Args[len(m.Args)-1]
}

// Nick returns the nickname of a user prefix, or "" for any other prefix.
func (m *Message) Nick() string {
	if p, ok := m.Prefix.(UserPrefix); ok {
		return p.Nickname
	}
	return ""
}

// String returns the wire form of the message without the line terminator.
// It does not validate the message; use WriteMessage for that.
func (m *Message) String() string {
	return string(appendMessage(nil, m))
}

func (m *Message) command() string {
	if m.Code != Unknown {
		return m.Code.Token()
	}
	return m.Command
}

// Parse decodes one line into a Message.
// Format: [@tags ][:prefix ]<command>[ <arg>]*[ :<trailing>][\r]\n
//
// The line terminator is optional and stripped. Unknown commands are not an
// error: they parse with Code set to Unknown and the token kept in Command.
func Parse(line string) (*Message, error) {
	raw := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Message: "empty line"}
	}

	msg := &Message{}
	rest := raw

	if strings.HasPrefix(rest, "@") {
		tags, after, ok := strings.Cut(rest[1:], " ")
		if !ok {
			return nil, &ParseError{Message: "missing command after tags", Line: raw}
		}
		msg.Tags = parseTags(tags)
		rest = strings.TrimLeft(after, " ")
	}

	if strings.HasPrefix(rest, ":") {
		source, after, ok := strings.Cut(rest[1:], " ")
		if !ok {
			return nil, &ParseError{Message: "missing command after prefix", Line: raw}
		}
		if source == "" {
			return nil, &ParseError{Message: "empty prefix", Line: raw}
		}
		msg.Prefix = ParsePrefix(source)
		rest = after
	}

	rest = strings.TrimLeft(rest, " ")
	if rest == "" {
		return nil, &ParseError{Message: "missing command", Line: raw}
	}

	msg.Command, rest, _ = strings.Cut(rest, " ")
	msg.Code = ParseCode(msg.Command)

	for rest != "" {
		if rest[0] == ' ' {
			rest = rest[1:]
			continue
		}
		if rest[0] == ':' {
			msg.Args = append(msg.Args, rest[1:])
			break
		}
		var arg string
		arg, rest, _ = strings.Cut(rest, " ")
		msg.Args = append(msg.Args, arg)
	}

	return msg, nil
}

// WriteMessage validates msg and writes it to w followed by CRLF.
// Nothing is written if the message is invalid.
func WriteMessage(w io.Writer, msg *Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	buf := make([]byte, 0, 128)
	buf = appendMessage(buf, msg)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func validateMessage(msg *Message) error {
	cmd := msg.command()
	if cmd == "" {
		return &InvalidMessageError{Message: "missing command"}
	}
	if strings.ContainsAny(cmd, " :@\r\n\x00") {
		return &InvalidMessageError{Message: "invalid command " + strconv.Quote(cmd)}
	}

	for key, value := range msg.Tags {
		if key == "" || strings.ContainsAny(key, " =;\r\n\x00") {
			return &InvalidMessageError{Message: "invalid tag key " + strconv.Quote(key)}
		}
		if strings.ContainsRune(value, 0) {
			return &InvalidMessageError{Message: "NUL in tag " + key}
		}
	}

	if msg.Prefix != nil {
		p := msg.Prefix.String()
		if p == "" || strings.ContainsAny(p, " \r\n\x00") {
			return &InvalidMessageError{Message: "invalid prefix " + strconv.Quote(p)}
		}
	}

	for i, arg := range msg.Args {
		if strings.ContainsAny(arg, "\r\n\x00") {
			return &InvalidMessageError{Message: "argument " + strconv.Itoa(i) + " contains CR, LF or NUL"}
		}
		if i == len(msg.Args)-1 {
			break
		}
		if arg == "" || arg[0] == ':' || strings.ContainsRune(arg, ' ') {
			return &InvalidMessageError{Message: "argument " + strconv.Itoa(i) + " must be the last one: " + strconv.Quote(arg)}
		}
	}

	return nil
}

func appendMessage(buf []byte, msg *Message) []byte {
	if len(msg.Tags) > 0 {
		buf = append(buf, '@')
		for i, key := range slices.Sorted(maps.Keys(msg.Tags)) {
			if i > 0 {
				buf = append(buf, ';')
			}
			buf = append(buf, key...)
			if value := msg.Tags[key]; value != "" {
				buf = append(buf, '=')
				buf = appendEscapedTag(buf, value)
			}
		}
		buf = append(buf, ' ')
	}

	if msg.Prefix != nil {
		buf = append(buf, ':')
		buf = append(buf, msg.Prefix.String()...)
		buf = append(buf, ' ')
	}

	buf = append(buf, msg.command()...)

	for i, arg := range msg.Args {
		buf = append(buf, ' ')
		if i == len(msg.Args)-1 && needsTrailingMarker(arg) {
			buf = append(buf, ':')
		}
		buf = append(buf, arg...)
	}

	return buf
}

func needsTrailingMarker(arg string) bool {
	return arg == "" || arg[0] == ':' || strings.ContainsRune(arg, ' ')
}

// parseTags decodes "key[=value](;key[=value])*". Later duplicates win.
func parseTags(s string) map[string]string {
	tags := make(map[string]string)
	for part := range strings.SplitSeq(s, ";") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		tags[key] = unescapeTag(value)
	}
	return tags
}

func unescapeTag(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(s) {
			break
		}
		switch s[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func appendEscapedTag(buf []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ';':
			buf = append(buf, '\\', ':')
		case ' ':
			buf = append(buf, '\\', 's')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\n':
			buf = append(buf, '\\', 'n')
		default:
			buf = append(buf, c)
		}
	}
	return buf
}
