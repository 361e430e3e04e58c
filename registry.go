package fmtoken

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Entry pairs a token with its wire literal.
type Entry struct {
	Token   Token
	Literal string
}

// Registry is the immutable, ordered table of declared tokens. The only
// populated Registry is the one returned by Default; the zero value is empty.
type Registry struct {
	defs      []Definition
	entries   []Entry
	byLiteral map[string]Token
	byName    map[string]Token
}

var std = mustRegistry(definitions[:]...)

func mustRegistry(defs ...Definition) *Registry {
	r, err := newRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry of the declared tokens.
func Default() *Registry {
	return std
}

// newRegistry validates defs and returns a registry in which defs[i] is
// Token(i). It fails on a missing or malformed literal or name, and on a
// literal or name used by more than one definition.
func newRegistry(defs ...Definition) (*Registry, error) {
	if len(defs) > math.MaxUint8+1 {
		return nil, fmt.Errorf("registry: %w: %d definitions", ErrTooManyTokens, len(defs))
	}
	r := &Registry{
		defs:      append([]Definition(nil), defs...),
		entries:   make([]Entry, 0, len(defs)),
		byLiteral: make(map[string]Token, len(defs)),
		byName:    make(map[string]Token, 2*len(defs)),
	}
	for i, def := range defs {
		tok := Token(i)
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("registry: token %d (%s): %w", i, def.Name, err)
		}
		if prev, ok := r.byLiteral[def.Literal]; ok {
			return nil, fmt.Errorf("registry: token %d (%s): %w: %q already used by %s", i, def.Name, ErrDuplicateLiteral, def.Literal, r.defs[prev].Name)
		}
		r.byLiteral[def.Literal] = tok
		inner, _ := markerName(def.Literal)
		for _, key := range []string{normalizeName(def.Name), inner} {
			if prev, ok := r.byName[key]; ok && prev != tok {
				return nil, fmt.Errorf("registry: token %d (%s): %w: %q already used by %s", i, def.Name, ErrDuplicateName, key, r.defs[prev].Name)
			}
			r.byName[key] = tok
		}
		r.entries = append(r.entries, Entry{Token: tok, Literal: def.Literal})
	}
	return r, nil
}

// qualifiedPrefix is the enum qualifier used by the upstream vocabulary,
// as in FormattingToken::MetaSep.
const qualifiedPrefix = "formattingtoken::"

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, qualifiedPrefix)
}

// Len returns the number of tokens in r.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Literal returns the literal for t, or "" if t is not in r.
func (r *Registry) Literal(t Token) string {
	if int(t) >= len(r.entries) {
		return ""
	}
	return r.entries[t].Literal
}

// Definition returns the definition of t.
func (r *Registry) Definition(t Token) (Definition, bool) {
	if int(t) >= len(r.defs) {
		return Definition{}, false
	}
	return r.defs[t], true
}

// Lookup returns the token whose literal is exactly literal. Matching is
// case-sensitive and nothing is trimmed.
func (r *Registry) Lookup(literal string) (Token, bool) {
	tok, ok := r.byLiteral[literal]
	return tok, ok
}

// ParseToken resolves a symbolic name ("MetaSep", "FormattingToken::MetaSep")
// or a marker's inner name ("meta_sep"). Case and surrounding space are
// ignored.
func (r *Registry) ParseToken(name string) (Token, bool) {
	tok, ok := r.byName[normalizeName(name)]
	return tok, ok
}

// All yields every token and its literal in declaration order.
func (r *Registry) All() iter.Seq2[Token, string] {
	return func(yield func(Token, string) bool) {
		for _, e := range r.entries {
			if !yield(e.Token, e.Literal) {
				return
			}
		}
	}
}

// Entries returns a copy of the table in declaration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Tokens returns the tokens of r in declaration order.
func (r *Registry) Tokens() []Token {
	out := make([]Token, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Token
	}
	return out
}

// Lookup returns the declared token whose literal is exactly literal.
func Lookup(literal string) (Token, bool) {
	return std.Lookup(literal)
}

// ParseToken resolves a declared token by symbolic or marker name.
func ParseToken(name string) (Token, bool) {
	return std.ParseToken(name)
}

// All yields every declared token and its literal in declaration order.
func All() iter.Seq2[Token, string] {
	return std.All()
}

// Entries returns the declared table in declaration order.
func Entries() []Entry {
	return std.Entries()
}

// Tokens returns all declared tokens in declaration order.
func Tokens() []Token {
	return std.Tokens()
}
