package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/fmtoken"
	"pkt.systems/version"
)

const (
	defaultFormat = "text"
	defaultWidth  = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/fmtoken")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		formatName  string
		widthFlag   int
		outPath     string
		listFormats bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("fmtoken", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&formatName, "format", "f", defaultFormat, "Dump format: "+strings.Join(fmtoken.Formats(), "|"))
	flags.IntVarP(&widthFlag, "width", "w", 0, "Wrap width for text dumps (0 wraps to the terminal width, files and pipes are not wrapped)")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&listFormats, "list-formats", false, "List available dump formats")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: fmtoken [flags] [literal-or-name...]\n")
		fmt.Fprintln(stderr, "\nWithout arguments the token table is dumped. Each argument is resolved")
		fmt.Fprintln(stderr, "as a literal (<|meta_sep|>) or a token name (MetaSep, meta_sep).")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	if listFormats {
		for _, name := range fmtoken.Formats() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	format, err := fmtoken.ParseFormat(formatName)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format %q: %v\n", formatName, err)
		return 2
	}
	if widthFlag < 0 {
		fmt.Fprintf(stderr, "invalid --width %d\n", widthFlag)
		return 2
	}

	var body bytes.Buffer
	status := 0
	if queries := flags.Args(); len(queries) > 0 {
		status = resolveQueries(&body, stderr, queries)
		if body.Len() == 0 {
			return status
		}
	} else {
		if format.Binary() && outPath == "" && isTerminal(stdout) {
			fmt.Fprintf(stderr, "refusing to write %s to terminal; use -o/--output\n", format)
			return 2
		}
		if err := fmtoken.Dump(fmtoken.DumpRequest{
			Writer: &body,
			Format: format,
			Width:  outputWidth(widthFlag, outPath, stdout),
		}); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}

	if err := writeOutput(outPath, stdout, body.Bytes()); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return status
}

// resolveQueries prints "Name<TAB>Literal" for each query. Queries are tried
// as literals first, then as token names.
func resolveQueries(w, stderr io.Writer, queries []string) int {
	status := 0
	for _, q := range queries {
		tok, ok := fmtoken.Lookup(q)
		if !ok {
			tok, ok = fmtoken.ParseToken(q)
		}
		if !ok {
			fmt.Fprintf(stderr, "unknown token %q\n", q)
			status = 1
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", tok.Name(), tok.Literal())
	}
	return status
}

// outputWidth picks the wrap width for text dumps. An explicit --width wins;
// otherwise only a terminal wraps, and files and pipes get unwrapped rows.
func outputWidth(width int, outPath string, stdout io.Writer) int {
	if width > 0 {
		return width
	}
	if outPath != "" || !isTerminal(stdout) {
		return 0
	}
	if f, ok := stdout.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeOutput writes data to stdout, or to path once the whole output is
// known, creating parent directories as needed.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := stdout.Write(data)
		return err
	}
	path = expandHome(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
