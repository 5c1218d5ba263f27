package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTokenFilePath(t *testing.T) {
	got := defaultTokenFilePath("/tmp/src/hello.mlang")
	want := filepath.Join("docs", "Analizador-sintactico", "archivos_parser", "hello_tokens.txt")
	if got != want {
		t.Fatalf("defaultTokenFilePath() = %q, want %q", got, want)
	}
}

func TestRunLexOnlySucceeds(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mlang")
	if err := os.WriteFile(src, []byte("fn main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{"-l", src}); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}
}

func TestRunParseErrorExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.mlang")
	if err := os.WriteFile(src, []byte("fn () {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{"-p", src}); code != exitError {
		t.Fatalf("run() = %d, want %d", code, exitError)
	}
}

func TestRunWriteTokensToExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mlang")
	out := filepath.Join(dir, "out", "tokens.txt")
	if err := os.WriteFile(src, []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{"-t", "-o", out, src}); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading token file: %v", err)
	}
	if !strings.Contains(string(data), "# Total de tokens:") {
		t.Fatalf("token file missing trailing count line:\n%s", data)
	}
}

func TestMissingSourceStartsREPL(t *testing.T) {
	// With no positional source path, run() falls into the interactive
	// session; feeding it an already-closed reader should return
	// immediately rather than hang.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	if code := run(nil); code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}
}
