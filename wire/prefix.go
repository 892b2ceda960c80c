package wire

import "strings"

// Prefix identifies the origin of a message. It is either a ServerPrefix or
// a UserPrefix.
type Prefix interface {
	String() string
	isPrefix()
}

// ServerPrefix is a prefix naming a server, such as "irc.example.com".
type ServerPrefix string

func (p ServerPrefix) String() string { return string(p) }
func (ServerPrefix) isPrefix()        {}

// UserPrefix is a prefix of the form nick[!user][@host].
// User and Host are empty when absent.
type UserPrefix struct {
	Nickname string
	User     string
	Host     string
}

func (p UserPrefix) String() string {
	var b strings.Builder
	b.WriteString(p.Nickname)
	if p.User != "" {
		b.WriteByte('!')
		b.WriteString(p.User)
	}
	if p.Host != "" {
		b.WriteByte('@')
		b.WriteString(p.Host)
	}
	return b.String()
}

func (UserPrefix) isPrefix() {}

// ParsePrefix parses a prefix token without its leading ':'.
// A token containing '!' or '@' is a user descriptor, anything else is a
// server name.
func ParsePrefix(s string) Prefix {
	if !strings.ContainsAny(s, "!@") {
		return ServerPrefix(s)
	}

	var p UserPrefix
	nick, host, hasHost := strings.Cut(s, "@")
	if hasHost {
		p.Host = host
	}
	nick, user, hasUser := strings.Cut(nick, "!")
	if hasUser {
		p.User = user
	}
	p.Nickname = nick
	return p
}
