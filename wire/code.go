package wire

//go:generate go run ../internal/gencodes -in codes.txt -out codes_gen.go

// Code identifies a command, a numeric reply or a numeric error.
//
// The set of known codes is generated from codes.txt. Any token that is not in
// the table parses to Unknown; the verbatim token is kept in Message.Command.
type Code uint16

type codeClass uint8

const (
	classCommand codeClass = iota
	classReply
	classError
)

type codeInfo struct {
	name  string
	token string
	class codeClass
}

var codeByToken map[string]Code

func init() {
	codeByToken = make(map[string]Code, len(codeTable))
	for i, info := range codeTable {
		if info.token != "" {
			codeByToken[info.token] = Code(i)
		}
	}
}

// ParseCode looks up a wire token in the code table.
// Matching is exact: numerics are three digits and commands are upper case.
// Unrecognized tokens return Unknown.
func ParseCode(token string) Code {
	if c, ok := codeByToken[token]; ok {
		return c
	}
	return Unknown
}

func (c Code) info() codeInfo {
	if int(c) < len(codeTable) {
		return codeTable[c]
	}
	return codeTable[Unknown]
}

// IsReply reports whether the code is a numeric reply (RPL_*).
func (c Code) IsReply() bool {
	return c.info().class == classReply
}

// IsError reports whether the code is a numeric error (ERR_*).
func (c Code) IsError() bool {
	return c.info().class == classError
}

// Token returns the wire form of the code, "" for Unknown.
func (c Code) Token() string {
	return c.info().token
}

// Name returns the symbolic name of the code, such as "RPL_WELCOME".
func (c Code) Name() string {
	return c.info().name
}

// String returns the wire token, or "Unknown" for Unknown. The text of an
// unknown command is kept in Message.Command, not in the Code.
func (c Code) String() string {
	if info := c.info(); info.token != "" {
		return info.token
	}
	return "Unknown"
}
