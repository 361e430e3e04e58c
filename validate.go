package fmtoken

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLiteral reports a token definition without a literal.
	ErrMissingLiteral = errors.New("missing literal")
	// ErrMalformedLiteral reports a literal that is not of the form <|name|>.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrDuplicateLiteral reports two tokens sharing one literal.
	ErrDuplicateLiteral = errors.New("duplicate literal")
	// ErrMissingName reports a token definition without a symbolic name.
	ErrMissingName = errors.New("missing name")
	// ErrMalformedName reports a symbolic name with spaces or non-ASCII bytes.
	ErrMalformedName = errors.New("malformed name")
	// ErrDuplicateName reports two tokens that resolve to the same name.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrTooManyTokens reports more definitions than Token can index.
	ErrTooManyTokens = errors.New("too many tokens")
	// ErrUnknownToken reports a name or value that is not a declared token.
	ErrUnknownToken = errors.New("unknown token")
)

const (
	markerOpen  = "<|"
	markerClose = "|>"
)

// ValidateLiteral returns an error unless literal has the form <|name|>, where
// name is one or more of a-z, 0-9 and underscore.
func ValidateLiteral(literal string) error {
	if literal == "" {
		return ErrMissingLiteral
	}
	if _, ok := markerName(literal); !ok {
		return fmt.Errorf("%w: %q", ErrMalformedLiteral, literal)
	}
	return nil
}

// markerName returns the inner name of a well-formed literal.
func markerName(literal string) (string, bool) {
	if len(literal) <= len(markerOpen)+len(markerClose) {
		return "", false
	}
	if literal[:len(markerOpen)] != markerOpen || literal[len(literal)-len(markerClose):] != markerClose {
		return "", false
	}
	name := literal[len(markerOpen) : len(literal)-len(markerClose)]
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return "", false
		}
	}
	return name, true
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}

func validateDefinition(def Definition) error {
	if def.Name == "" {
		return ErrMissingName
	}
	for i := 0; i < len(def.Name); i++ {
		if def.Name[i] <= ' ' || def.Name[i] > '~' {
			return fmt.Errorf("%w: %q", ErrMalformedName, def.Name)
		}
	}
	return ValidateLiteral(def.Literal)
}
