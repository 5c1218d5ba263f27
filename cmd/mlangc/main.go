// Command mlangc is the lexer/parser front end for the compiled language:
// it lexes and optionally parses a source file, and can dump the token
// stream to the legacy file format consumed by downstream tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/internal/cliutil"
	"github.com/JesusMj16/Compilador/lexer"
	"github.com/JesusMj16/Compilador/parser"
	"github.com/JesusMj16/Compilador/repl"
	"github.com/JesusMj16/Compilador/token"
)

const (
	exitOK    = 0
	exitError = 1
)

const usage = `mlangc - lexer/parser front end

Usage:
  mlangc [flags] <source-path>
  mlangc              (no source path: start an interactive session)

Flags:
  -l           lex-only: print the token table to stdout
  -p           parse the source and print the AST
  -t           write the token file (legacy dump format)
  -s           print parser statistics
  -o PATH      output path for -t (default: docs/Analizador-sintactico/archivos_parser/<basename>_tokens.txt)
  -h, --help   show this help

Exit status is 0 on success, 1 on any lexer/parser/IO error.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, unknown := cliutil.ParseArgs(args)

	if flags.HelpFlag {
		fmt.Fprint(os.Stdout, usage)
		return exitOK
	}
	if len(unknown) > 0 {
		cliutil.PrintError("unrecognized argument %q", unknown[0])
		fmt.Fprint(os.Stderr, usage)
		return exitError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if flags.Source == "" {
		repl.New().Run(os.Stdin, os.Stdout)
		return exitOK
	}

	src, err := os.ReadFile(flags.Source)
	if err != nil {
		cliutil.PrintError("%v", err)
		return exitError
	}

	// Default to -l when no mode flag was given, matching a plain
	// "show me the tokens" invocation.
	if !flags.LexOnly && !flags.Parse && !flags.WriteTokens && !flags.Stats {
		flags.LexOnly = true
	}

	fset := token.NewFileSet()
	code := exitOK

	if flags.LexOnly {
		if err := printTokenTable(os.Stdout, fset, flags.Source, src); err != nil {
			logger.Error("lex failed", "path", flags.Source, "err", err)
			cliutil.PrintError("%v", err)
			code = exitError
		}
	}

	if flags.WriteTokens {
		out := flags.Output
		if out == "" {
			out = defaultTokenFilePath(flags.Source)
		}
		if err := writeTokenFile(out, flags.Source, src); err != nil {
			logger.Error("token dump failed", "path", flags.Source, "err", err)
			cliutil.PrintError("%v", err)
			code = exitError
		}
	}

	var prog *ast.Program
	var parseErr error
	if flags.Parse || flags.Stats {
		prog, parseErr = parser.ParseFile(fset, flags.Source, src)
		if parseErr != nil {
			logger.Error("parse failed", "path", flags.Source, "err", parseErr)
			cliutil.PrintError("%v", parseErr)
			code = exitError
		}
	}

	if flags.Parse && prog != nil {
		if err := ast.Fprint(os.Stdout, fset, prog); err != nil {
			cliutil.PrintError("%v", err)
			code = exitError
		}
	}

	if flags.Stats {
		printStats(os.Stdout, fset, flags.Source, src, prog)
	}

	return code
}

func defaultTokenFilePath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	return filepath.Join("docs", "Analizador-sintactico", "archivos_parser", name+"_tokens.txt")
}

// printTokenTable prints a human-readable token table: one line per token,
// aligned columns, not the legacy dump format (that's writeTokenFile's job).
func printTokenTable(w *os.File, fset *token.FileSet, filename string, src []byte) error {
	file := fset.AddFile(filename, -1, len(src))
	var firstErr error
	toks := lexer.TokenizeAll(file, src, func(pos token.Position, msg string) {
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %s", pos, msg)
		}
	})

	fmt.Fprintf(w, "%-12s %-20s %s\n", "CATEGORY", "LEXEME", "POSITION")
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			fmt.Fprintf(w, "%-12s %-20s %s\n", tk.Kind.Category(), "EOF", file.Position(tk.Pos))
			continue
		}
		fmt.Fprintf(w, "%-12s %-20q %s\n", tk.Kind.Category(), tk.Lit, file.Position(tk.Pos))
	}
	return firstErr
}

// writeTokenFile emits the legacy token-dump format described in the
// external interface contract: a header block, one record per line, and a
// trailing total-count comment. The whole dump is written even when the
// source has lexer errors; the first of them is then returned.
func writeTokenFile(outPath, sourcePath string, src []byte) error {
	out, closeFn, err := cliutil.GetOutput(outPath)
	if err != nil {
		return err
	}
	defer closeFn()

	fset := token.NewFileSet()
	file := fset.AddFile(sourcePath, -1, len(src))
	var lexErr error
	toks := lexer.TokenizeAll(file, src, func(pos token.Position, msg string) {
		if lexErr == nil {
			lexErr = fmt.Errorf("%s: %s", pos, msg)
		}
	})

	fmt.Fprintf(out, "# Tokens generados desde: %s\n", sourcePath)
	fmt.Fprintf(out, "# Formato: tipo_token lexema linea columna [indice_palabra_clave]\n")
	fmt.Fprintf(out, "# Tipos: IDENTIFIER=0 NUMBER=1 STRING=2 OPERATOR=3 DELIMITER=4 KEYWORD=5 UNKNOWN=6 EOF=7\n")
	fmt.Fprintf(out, "# Palabras clave: fn=0 let=1 mut=2 if=3 else=4 match=5 while=6 loop=7 for=8 in=9 break=10 continue=11 return=12 true=13 false=14\n")
	fmt.Fprintln(out)

	for _, tk := range toks {
		position := file.Position(tk.Pos)
		lexeme := tk.Lit
		if lexeme == "" {
			lexeme = "NULL"
		}
		if idx, ok := token.LegacyIndex(tk.Kind); ok {
			fmt.Fprintf(out, "%d %s %d %d %d\n", int(tk.Kind.Category()), lexeme, position.Line, position.Column, idx)
		} else {
			fmt.Fprintf(out, "%d %s %d %d\n", int(tk.Kind.Category()), lexeme, position.Line, position.Column)
		}
	}
	fmt.Fprintf(out, "# Total de tokens: %d\n", len(toks))
	return lexErr
}

func printStats(w *os.File, fset *token.FileSet, sourcePath string, src []byte, prog *ast.Program) {
	file := fset.AddFile(sourcePath+".stats", -1, len(src))
	toks := lexer.TokenizeAll(file, src, nil)
	errorCount := 0
	for _, tk := range toks {
		if tk.Kind == token.Illegal {
			errorCount++
		}
	}
	tokenCount := len(toks)

	functions, stmts := 0, 0
	if prog != nil {
		for _, item := range prog.Items {
			stmts++
			if _, ok := item.(*ast.Function); ok {
				functions++
			}
		}
	}

	fmt.Fprintf(w, "tokens: %d\n", tokenCount)
	fmt.Fprintf(w, "illegal tokens: %d\n", errorCount)
	fmt.Fprintf(w, "top-level items: %d\n", stmts)
	fmt.Fprintf(w, "functions: %d\n", functions)
}
