package fmtoken

import (
	"fmt"
	"strconv"
)

// Token is a formatting marker known to the registry.
type Token uint8

const (
	// MetaSep separates fields within a metadata block.
	MetaSep Token = iota
	// MetaEnd terminates a metadata block.
	MetaEnd

	tokenCount
)

// Definition describes one token: its symbolic name, wire literal and a
// one-line description used by documentation dumps.
type Definition struct {
	Name        string
	Literal     string
	Description string
}

var definitions = [...]Definition{
	MetaSep: {
		Name:        "MetaSep",
		Literal:     "<|meta_sep|>",
		Description: "Separates fields within a metadata block.",
	},
	MetaEnd: {
		Name:        "MetaEnd",
		Literal:     "<|meta_end|>",
		Description: "Terminates a metadata block.",
	},
}

// Every Token must have a definition; the build fails otherwise.
var _ = [1]struct{}{}[len(definitions)-int(tokenCount)]

// Valid reports whether t is a declared token.
func (t Token) Valid() bool {
	return t < tokenCount
}

// Literal returns the wire literal for t, or "" if t is not a declared token.
func (t Token) Literal() string {
	if t >= tokenCount {
		return ""
	}
	return definitions[t].Literal
}

// Name returns the symbolic name of t, e.g. "MetaSep".
func (t Token) Name() string {
	if t >= tokenCount {
		return ""
	}
	return definitions[t].Name
}

// Description returns the one-line documentation for t.
func (t Token) Description() string {
	if t >= tokenCount {
		return ""
	}
	return definitions[t].Description
}

func (t Token) String() string {
	if t >= tokenCount {
		return "Token(" + strconv.Itoa(int(t)) + ")"
	}
	return definitions[t].Name
}

// MarshalText encodes t as its symbolic name.
func (t Token) MarshalText() ([]byte, error) {
	if t >= tokenCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownToken, uint8(t))
	}
	return []byte(definitions[t].Name), nil
}

// UnmarshalText decodes a symbolic name as accepted by ParseToken.
func (t *Token) UnmarshalText(text []byte) error {
	tok, ok := ParseToken(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownToken, text)
	}
	*t = tok
	return nil
}

// Literal returns the wire literal for t. It is the function form of
// Token.Literal.
func Literal(t Token) string {
	return t.Literal()
}
