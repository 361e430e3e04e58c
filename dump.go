package fmtoken

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// DumpRequest configures Dump.
type DumpRequest struct {
	Writer io.Writer
	Format Format
	// Width limits text output; descriptions wrap to fit. Zero disables
	// wrapping. Literals are never split.
	Width int
}

// TableEntry is the serialized form of one registry entry.
type TableEntry struct {
	Token       string `json:"token" yaml:"token" toml:"token" msgpack:"token"`
	Literal     string `json:"literal" yaml:"literal" toml:"literal" msgpack:"literal"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" msgpack:"description,omitempty"`
}

// TOMLTable is the document written for FormatTOML.
type TOMLTable struct {
	Token []TableEntry `toml:"token"`
}

const (
	columnGap      = "  "
	minDescWidth   = 16
	headerToken    = "NAME"
	headerLiteral  = "LITERAL"
	headerDescribe = "DESCRIPTION"
)

// Dump writes the declared token table to req.Writer in req.Format.
func Dump(req DumpRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("dump: Writer is nil")
	}
	if req.Width < 0 {
		return fmt.Errorf("dump: negative width %d", req.Width)
	}
	return dumpRegistry(req, Default())
}

func dumpRegistry(req DumpRequest, reg *Registry) error {
	table := tableEntries(reg)
	var err error
	switch req.Format {
	case FormatText:
		err = dumpText(req.Writer, table, req.Width)
	case FormatMarkdown:
		err = dumpMarkdown(req.Writer, table)
	case FormatJSON:
		enc := json.NewEncoder(req.Writer)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(table)
	case FormatYAML:
		enc := yaml.NewEncoder(req.Writer)
		enc.SetIndent(2)
		if err = enc.Encode(table); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(req.Writer).Encode(TOMLTable{Token: table})
	case FormatMsgpack:
		err = msgpack.NewEncoder(req.Writer).Encode(table)
	default:
		return fmt.Errorf("dump: %w %s", ErrUnknownFormat, req.Format)
	}
	if err != nil {
		return fmt.Errorf("dump %s: %w", req.Format, err)
	}
	return nil
}

func tableEntries(reg *Registry) []TableEntry {
	table := make([]TableEntry, 0, reg.Len())
	for tok, literal := range reg.All() {
		def, _ := reg.Definition(tok)
		table = append(table, TableEntry{
			Token:       def.Name,
			Literal:     literal,
			Description: def.Description,
		})
	}
	return table
}

func dumpText(w io.Writer, table []TableEntry, width int) error {
	nameWidth := ansi.PrintableRuneWidth(headerToken)
	literalWidth := ansi.PrintableRuneWidth(headerLiteral)
	for _, e := range table {
		nameWidth = max(nameWidth, ansi.PrintableRuneWidth(e.Token))
		literalWidth = max(literalWidth, ansi.PrintableRuneWidth(e.Literal))
	}
	indent := nameWidth + literalWidth + 2*len(columnGap)
	descWidth := 0
	if width > 0 {
		descWidth = max(width-indent, minDescWidth)
	}

	bw := bufio.NewWriter(w)
	row := func(name, literal, desc string) {
		bw.WriteString(padding.String(name, uint(nameWidth)))
		bw.WriteString(columnGap)
		if desc == "" {
			bw.WriteString(literal)
			bw.WriteByte('\n')
			return
		}
		bw.WriteString(padding.String(literal, uint(literalWidth)))
		bw.WriteString(columnGap)
		for i, line := range wrapLines(desc, descWidth) {
			if i > 0 {
				bw.WriteString(strings.Repeat(" ", indent))
			}
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}
	row(headerToken, headerLiteral, headerDescribe)
	for _, e := range table {
		row(e.Token, e.Literal, e.Description)
	}
	return bw.Flush()
}

func wrapLines(text string, limit int) []string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return []string{text}
	}
	lines := strings.Split(wordwrap.String(text, limit), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func dumpMarkdown(w io.Writer, table []TableEntry) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("| Token | Literal | Description |\n")
	bw.WriteString("| --- | --- | --- |\n")
	for _, e := range table {
		fmt.Fprintf(bw, "| `%s` | `%s` | %s |\n",
			escapeCell(e.Token), escapeCell(e.Literal), escapeCell(e.Description))
	}
	return bw.Flush()
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
