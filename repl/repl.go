// Package repl implements an interactive read-lex-parse-print loop for
// mlangc: each line (or accumulated block) the user enters is tokenized
// and parsed immediately, with colored feedback distinguishing tokens,
// AST output, and errors.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/lexer"
	"github.com/JesusMj16/Compilador/parser"
	"github.com/JesusMj16/Compilador/token"
)

const prompt = "mlangc> "

var (
	tokenColor = color.New(color.FgCyan)
	astColor   = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
	bannerColor = color.New(color.FgYellow)
)

// Repl is an interactive session. The zero value is not usable; use New.
type Repl struct{}

// New creates an interactive session with default settings.
func New() *Repl { return &Repl{} }

// Run drives the loop, reading lines from in through readline and writing
// colored output to out. It returns when the user sends EOF (Ctrl-D) or
// types "exit"/"quit". If readline cannot be set up, Run instead reads all
// of in and evaluates it as one buffer.
func (r *Repl) Run(in io.Reader, out io.Writer) {
	bannerColor.Fprintln(out, "mlangc interactive session - enter a statement, Ctrl-D to quit")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		Stdin:       io.NopCloser(in),
		Stdout:      out,
		HistoryFile: "",
	})
	if err != nil {
		// Fall back to a non-interactive reader (e.g. piped stdin in tests).
		r.runPlain(in, out)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		if line == "exit" || line == "quit" {
			return
		}
		if line == "" {
			continue
		}
		r.eval(line, out)
	}
}

func (r *Repl) runPlain(in io.Reader, out io.Writer) {
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := in.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err != nil {
			break
		}
	}
	if len(buf) > 0 {
		r.eval(string(buf), out)
	}
}

func (r *Repl) eval(line string, out io.Writer) {
	r.printTokens(line, out)

	fset := token.NewFileSet()
	prog, err := parser.ParseFile(fset, "<repl>", line)
	if err != nil {
		errorColor.Fprintln(out, err.Error())
		return
	}
	astColor.Fprintln(out, "parsed OK:")
	if perr := ast.Fprint(out, fset, prog); perr != nil {
		fmt.Fprintln(out, perr)
	}
}

func (r *Repl) printTokens(line string, out io.Writer) {
	fset := token.NewFileSet()
	file := fset.AddFile("<repl>", -1, len(line))
	for _, tk := range lexer.TokenizeAll(file, []byte(line), nil) {
		if tk.Kind == token.EOF {
			break
		}
		tokenColor.Fprintf(out, "%s ", tk.Kind)
	}
	fmt.Fprintln(out)
}
