package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestASCIIRoundTrip(t *testing.T) {
	const line = "PRIVMSG #chan :hello there, 1 + 1 = 2!\r\n"

	codecs := map[string]Codec{
		"utf8":         UTF8,
		"utf8-replace": NewUTF8(Replace),
		"latin1":       Latin1,
		"koi8r":        NewCharmap(charmap.KOI8R, Replace),
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, line, c.Decode(c.Encode(line)))
		})
	}
}

func TestUTF8Decode(t *testing.T) {
	tests := []struct {
		name string
		trap Trap
		in   []byte
		want string
	}{
		{"valid", Ignore, []byte("héllo ☃"), "héllo ☃"},
		{"ignore invalid byte", Ignore, []byte("a\xffb"), "ab"},
		{"ignore truncated sequence", Ignore, []byte("a\xe2\x98"), "a"},
		{"replace invalid byte", Replace, []byte("a\xffb"), "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUTF8(tt.trap).Decode(tt.in))
		})
	}
}

func TestUTF8Encode(t *testing.T) {
	assert.Equal(t, []byte("héllo"), UTF8.Encode("héllo"))
	assert.Equal(t, []byte("ab"), UTF8.Encode("a\xffb"))
	assert.Equal(t, []byte("a�b"), NewUTF8(Replace).Encode("a\xffb"))
}

func TestCharmap(t *testing.T) {
	latin1 := NewCharmap(charmap.ISO8859_1, Ignore)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, latin1.Encode("café"))
	assert.Equal(t, "café", latin1.Decode([]byte{'c', 'a', 'f', 0xe9}))

	// The snowman has no ISO-8859-1 representation.
	assert.Equal(t, []byte("ab"), latin1.Encode("a☃b"))
	assert.Equal(t, []byte("a?b"), NewCharmap(charmap.ISO8859_1, Replace).Encode("a☃b"))
}

func TestCharmapUndefinedBytes(t *testing.T) {
	cm := charmap.ISO8859_3
	undefined := -1
	for b := 0; b < 256; b++ {
		if cm.DecodeByte(byte(b)) == '�' {
			undefined = b
			break
		}
	}
	require.NotEqual(t, -1, undefined, "ISO-8859-3 has unassigned bytes")

	in := []byte{'a', byte(undefined), 'b'}
	assert.Equal(t, "ab", NewCharmap(cm, Ignore).Decode(in))
	assert.Equal(t, "a�b", NewCharmap(cm, Replace).Decode(in))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		label string
		input string
	}{
		{"utf-8", "héllo"},
		{"UTF8", "héllo"},
		{"latin1", "café"},
		{"windows-1251", "привет"},
		{"koi8-r", "привет"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			c, err := Lookup(tt.label, Ignore)
			require.NoError(t, err)
			assert.Equal(t, tt.input, c.Decode(c.Encode(tt.input)))
		})
	}
}

func TestLookupErrors(t *testing.T) {
	_, err := Lookup("shift_jis", Ignore)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Lookup("no-such-encoding", Ignore)
	assert.Error(t, err)
}
