package textcode

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Alphabet maps 5-bit values to code symbols.
	Alphabet = "S7LCX3JZE8FG4HBKWN52YPA6RTU9VMDQ"
	// Length is the number of symbols in a code.
	Length = 16
	// BufferSize is the number of bytes a code carries.
	BufferSize = Length * bitsPerSymbol / 8

	bitsPerSymbol = 5
)

var (
	// ErrLength reports a code with the wrong number of symbols.
	ErrLength = errors.New("code must have 16 symbols")
	// ErrSymbol reports a character outside Alphabet.
	ErrSymbol = errors.New("invalid code symbol")
)

// Code is a 16-symbol time trial code.
type Code string

// Encode converts buf into its code.
func Encode(buf [BufferSize]byte) Code {
	out := make([]byte, Length)
	for g := range Length {
		var v byte
		for bit := range bitsPerSymbol {
			offset := g*bitsPerSymbol + bit
			v = v<<1 | (buf[offset/8]>>(7-offset%8))&1
		}
		out[g] = Alphabet[v]
	}
	return Code(out)
}

// Parse normalizes a user-typed code: spaces and hyphens are dropped and
// letters are upper-cased. The result must be Length symbols from Alphabet.
func Parse(s string) (Code, error) {
	var b strings.Builder
	b.Grow(Length)
	for _, r := range strings.ToUpper(s) {
		if r == ' ' || r == '-' || r == '\t' {
			continue
		}
		if r > 0x7f || strings.IndexByte(Alphabet, byte(r)) < 0 {
			return "", fmt.Errorf("%w: %q", ErrSymbol, r)
		}
		b.WriteRune(r)
	}
	if b.Len() != Length {
		return "", fmt.Errorf("%w: got %d", ErrLength, b.Len())
	}
	return Code(b.String()), nil
}

func (c Code) String() string { return string(c) }

// Grouped splits the code into runs of size symbols joined by sep.
// A size of zero or less returns the code unchanged.
func (c Code) Grouped(size int, sep string) string {
	s := string(c)
	if size <= 0 || size >= len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + (len(s)/size)*len(sep))
	for i := 0; i < len(s); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i:min(i+size, len(s))])
	}
	return b.String()
}
