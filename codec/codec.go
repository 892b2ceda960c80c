// Package codec converts between protocol bytes and text.
//
// IRC has no mandated encoding: many networks use UTF-8, older ones use
// legacy single byte charsets. A Codec never fails. Malformed input is
// handled according to its Trap policy, so a corrupted byte costs at most a
// character and never the connection.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupported is returned by Lookup for encodings that are neither UTF-8
// nor a single byte charmap.
var ErrUnsupported = errors.New("codec: unsupported encoding")

// Codec decodes received bytes to text and encodes text to send.
type Codec interface {
	Decode(b []byte) string
	Encode(s string) []byte
}

// Trap selects what happens to bytes that cannot be decoded and characters
// that cannot be encoded.
type Trap uint8

const (
	// Ignore drops malformed input silently.
	Ignore Trap = iota
	// Replace substitutes U+FFFD when decoding. When encoding, charmap codecs
	// substitute '?' and the UTF-8 codec substitutes U+FFFD.
	Replace
)

const encodeReplacement = '?'

var (
	// UTF8 is the default codec, with the Ignore policy.
	UTF8 Codec = NewUTF8(Ignore)

	// Latin1 is ISO-8859-1, with the Ignore policy.
	Latin1 Codec = NewCharmap(charmap.ISO8859_1, Ignore)
)

// NewUTF8 returns a UTF-8 codec with the given trap policy.
func NewUTF8(trap Trap) Codec {
	return utf8Codec{trap: trap}
}

// NewCharmap returns a codec for a single byte character set.
func NewCharmap(cm *charmap.Charmap, trap Trap) Codec {
	return &charmapCodec{cm: cm, trap: trap}
}

// Lookup returns a codec for an encoding label such as "utf-8", "latin1" or
// "windows-1251". Labels follow the WHATWG encoding standard, in which
// "latin1" and "iso-8859-1" name windows-1252.
func Lookup(label string, trap Trap) (Codec, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		return NewUTF8(trap), nil
	}
	if cm, ok := enc.(*charmap.Charmap); ok {
		return NewCharmap(cm, trap), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
}

type utf8Codec struct {
	trap Trap
}

func (c utf8Codec) Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	if c.trap == Replace {
		s, err := unicode.UTF8.NewDecoder().Bytes(b)
		if err == nil {
			return string(s)
		}
	}
	return dropInvalid(string(b))
}

func (c utf8Codec) Encode(s string) []byte {
	if utf8.ValidString(s) {
		return []byte(s)
	}
	if c.trap == Replace {
		return []byte(strings.ToValidUTF8(s, string(utf8.RuneError)))
	}
	return []byte(dropInvalid(s))
}

// dropInvalid removes every byte that is not part of a valid UTF-8 sequence.
func dropInvalid(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r != utf8.RuneError || size > 1 {
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}

type charmapCodec struct {
	cm   *charmap.Charmap
	trap Trap
}

func (c *charmapCodec) Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, x := range b {
		r := c.cm.DecodeByte(x)
		if r == utf8.RuneError && c.trap == Ignore {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *charmapCodec) Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if x, ok := c.cm.EncodeRune(r); ok {
			out = append(out, x)
			continue
		}
		if c.trap == Replace {
			out = append(out, encodeReplacement)
		}
	}
	return out
}

func (c *charmapCodec) String() string {
	return c.cm.String()
}
