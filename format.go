package fmtoken

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownFormat reports a dump format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects the encoding used by Dump.
type Format uint8

const (
	// FormatText is an aligned, width-aware table for terminals.
	FormatText Format = iota
	// FormatMarkdown is a GitHub-flavored Markdown table.
	FormatMarkdown
	// FormatJSON is an indented JSON array.
	FormatJSON
	// FormatYAML is a YAML sequence.
	FormatYAML
	// FormatTOML is a TOML array of [[token]] tables.
	FormatTOML
	// FormatMsgpack is a MessagePack array.
	FormatMsgpack

	formatCount
)

var formatNames = [...]string{
	FormatText:     "text",
	FormatMarkdown: "markdown",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatTOML:     "toml",
	FormatMsgpack:  "msgpack",
}

var _ = [1]struct{}{}[len(formatNames)-int(formatCount)]

var formatAliases = map[string]Format{
	"txt": FormatText,
	"md":  FormatMarkdown,
	"yml": FormatYAML,
	"mp":  FormatMsgpack,
}

func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool {
	return f == FormatMsgpack
}

// ParseFormat returns the format for name or one of its short aliases
// (txt, md, yml, mp). The empty string selects FormatText.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return FormatText, nil
	}
	for i, n := range formatNames {
		if n == normalized {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[normalized]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// Formats returns the names of the supported dump formats.
func Formats() []string {
	names := make([]string, 0, len(formatNames))
	names = append(names, formatNames[:]...)
	sort.Strings(names)
	return names
}
