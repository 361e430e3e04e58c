// Package fmtoken is the registry of formatting tokens: symbolic markers such
// as MetaSep and MetaEnd and the literal text they are written as on the wire
// (<|meta_sep|>, <|meta_end|>).
//
// The registry is fixed when the program is built. Every declared Token has
// exactly one literal and no two tokens share a literal, so the mapping can be
// read in either direction. The table is checked once during package
// initialization; an inconsistent table stops the program before any caller
// can read it.
//
// Core properties:
//   - Token.Literal and Lookup are constant time and do not allocate
//   - Lookup reports an unknown literal with ok == false, never an error
//   - All iterates entries in declaration order and may be restarted
//   - Safe for concurrent use; nothing is mutated after initialization
//
// Callers should refer to tokens symbolically and obtain the literal from the
// registry rather than embedding marker strings.
//
// Example:
//
//	var b strings.Builder
//	b.WriteString("author=ada")
//	b.WriteString(fmtoken.MetaSep.Literal())
//	b.WriteString("lang=en")
//	b.WriteString(fmtoken.MetaEnd.Literal())
//
//	if tok, ok := fmtoken.Lookup("<|meta_end|>"); ok {
//		fmt.Println(tok) // MetaEnd
//	}
//
// The table can be written out for documentation or for consumers in other
// languages with Dump, in text, Markdown, JSON, YAML, TOML or MessagePack form.
package fmtoken
