package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"pkt.systems/fmtoken"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDumpsTextByDefault(t *testing.T) {
	code, out, errOut := runCLI(t, "--width", "120")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want, err := os.ReadFile("../../testdata/registry.text.golden")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if out != string(want) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunResolvesQueries(t *testing.T) {
	code, out, errOut := runCLI(t, "<|meta_sep|>", "MetaEnd", "meta_sep")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "MetaSep\t<|meta_sep|>\nMetaEnd\t<|meta_end|>\nMetaSep\t<|meta_sep|>\n"
	if out != want {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunReportsUnknownQuery(t *testing.T) {
	code, out, errOut := runCLI(t, "<|not_a_token|>", "MetaSep")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, `unknown token "<|not_a_token|>"`) {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
	if out != "MetaSep\t<|meta_sep|>\n" {
		t.Fatalf("expected known queries to still resolve, got %q", out)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if code, _, _ := runCLI(t, "--format", "xml"); code != 2 {
		t.Fatalf("expected exit 2 for unknown format, got %d", code)
	}
	if code, _, _ := runCLI(t, "--width", "-3"); code != 2 {
		t.Fatalf("expected exit 2 for negative width, got %d", code)
	}
	if code, _, _ := runCLI(t, "--nope"); code != 2 {
		t.Fatalf("expected exit 2 for unknown flag, got %d", code)
	}
}

func TestRunListFormats(t *testing.T) {
	code, out, _ := runCLI(t, "--list-formats")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != strings.Join(fmtoken.Formats(), "\n")+"\n" {
		t.Fatalf("unexpected format list: %q", out)
	}
}

func TestRunWritesMsgpackToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.msgpack")
	code, _, errOut := runCLI(t, "-f", "msgpack", "-o", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var table []fmtoken.TableEntry
	if err := msgpack.Unmarshal(data, &table); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(table) != len(fmtoken.Tokens()) || table[0].Literal != "<|meta_sep|>" {
		t.Fatalf("unexpected table: %+v", table)
	}
}

func TestOutputWidth(t *testing.T) {
	t.Setenv("COLUMNS", "20")
	if got := outputWidth(42, "", &bytes.Buffer{}); got != 42 {
		t.Fatalf("explicit width: got %d", got)
	}
	if got := outputWidth(0, "tokens.txt", os.Stdout); got != 0 {
		t.Fatalf("file output: got %d want 0", got)
	}
	if got := outputWidth(0, "", &bytes.Buffer{}); got != 0 {
		t.Fatalf("non-terminal output: got %d want 0", got)
	}
}

func TestRunFileOutputIsNotWrapped(t *testing.T) {
	t.Setenv("COLUMNS", "20")
	path := filepath.Join(t.TempDir(), "tokens.txt")
	if code, _, errOut := runCLI(t, "-o", path); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want, err := os.ReadFile("../../testdata/registry.text.golden")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("unexpected file output:\n%s", got)
	}
}

func TestRunLeavesNoOutputFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	cases := map[string][]string{
		"bad format":  {"-f", "xml"},
		"bad width":   {"-w", "-1"},
		"only misses": {"<|not_a_token|>", "Nope"},
	}
	for name, args := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_"), "out.txt")
		code, _, _ := runCLI(t, append([]string{"-o", path}, args...)...)
		if code == 0 {
			t.Fatalf("%s: expected failure exit", name)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Fatalf("%s: output file created (stat err %v)", name, err)
		}
	}
}

func TestRunResolvesQualifiedNames(t *testing.T) {
	code, out, errOut := runCLI(t, "FormattingToken::MetaEnd")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "MetaEnd\t<|meta_end|>\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := expandHome("~/tokens.txt"); got != filepath.Join("/home/tester", "tokens.txt") {
		t.Fatalf("expandHome(~/tokens.txt) = %q", got)
	}
	if got := expandHome("rel/tokens.txt"); got != "rel/tokens.txt" {
		t.Fatalf("expandHome changed a relative path: %q", got)
	}
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer reported as terminal")
	}
}
