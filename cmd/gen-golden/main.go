package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"pkt.systems/fmtoken"
)

// goldenFormats are the text formats compared byte for byte by the dump tests.
var goldenFormats = []fmtoken.Format{
	fmtoken.FormatText,
	fmtoken.FormatMarkdown,
	fmtoken.FormatJSON,
}

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatalf("mkdir %s: %v", root, err)
	}
	for _, format := range goldenFormats {
		var out bytes.Buffer
		if err := fmtoken.Dump(fmtoken.DumpRequest{Writer: &out, Format: format}); err != nil {
			fatalf("dump %s: %v", format, err)
		}
		path := goldenPath(root, format)
		if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	}
}

func goldenPath(root string, format fmtoken.Format) string {
	return filepath.Join(root, fmt.Sprintf("registry.%s.golden", format))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
