// Package parser implements a recursive-descent parser for source files
// of the compiled language, producing an *ast.Program or a single fatal
// [Error].
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/lexer"
	"github.com/JesusMj16/Compilador/token"
)

// ParseFile parses a single source file and returns the corresponding
// *ast.Program. The source may be provided via the filename, or via src
// (string, []byte, *bytes.Buffer, io.Reader, or fs.FS). On the first
// syntax error, parsing aborts and the returned *ast.Program is nil.
func ParseFile(fset *token.FileSet, filename string, src any) (*ast.Program, error) {
	if fset == nil {
		panic("parser.ParseFile: no token.FileSet provided")
	}

	text, err := readSource(filename, src)
	if err != nil {
		return nil, err
	}

	file := fset.AddFile(filename, -1, len(text))

	var p parser
	p.init(file, text)
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func readSource(filename string, src any) ([]byte, error) {
	if src != nil {
		switch src := src.(type) {
		case string:
			return []byte(src), nil
		case []byte:
			return src, nil
		case *bytes.Buffer:
			if src != nil {
				return src.Bytes(), nil
			}
			return nil, errors.New("invalid source")
		case io.Reader:
			return io.ReadAll(src)
		case fs.FS:
			return fs.ReadFile(src, filename)
		}
	}
	return os.ReadFile(filename)
}

// parser holds one token of look-ahead over a Lexer. Once err is set the
// parser is in the aborted state: every parse* method must check it
// (directly or via a nil propagated up from a callee) and unwind without
// consuming further tokens or building further nodes.
type parser struct {
	file    *token.File
	scanner *lexer.Lexer
	err     *Error

	pos token.Pos
	tok token.Token
	lit string
}

func (p *parser) init(file *token.File, src []byte) {
	p.file = file
	errFn := func(pos token.Position, msg string) {
		if p.err == nil {
			p.err = &Error{Pos: pos, Msg: msg}
		}
	}
	p.scanner = lexer.NewLexer(file, src, errFn)
	p.next()
}

func (p *parser) next() {
	p.pos, p.tok, p.lit = p.scanner.Scan()
}

// error records the first diagnostic only; later calls are no-ops so the
// original failure (closest to its cause) is what's reported.
func (p *parser) error(pos token.Pos, msg string) {
	if p.err == nil {
		p.err = &Error{Pos: p.file.Position(pos), Msg: msg}
	}
}

func (p *parser) errorExpected(pos token.Pos, want string) {
	msg := "expected " + want
	if pos == p.pos {
		switch {
		case p.tok == token.EOF:
			msg += ", found 'EOF'"
		case p.tok.IsLiteral():
			msg += fmt.Sprintf(", found %s %q", p.tok, p.lit)
		default:
			msg += fmt.Sprintf(", found %q", p.lit)
		}
	}
	p.error(pos, msg)
}

// expect consumes the current token if it matches tok, recording a fatal
// "expected X, found Y" error otherwise. The returned position is always
// that of the token that was (or should have been) consumed.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
		return pos
	}
	p.next()
	return pos
}

// ok reports whether the parser is still in a position to keep parsing.
func (p *parser) ok() bool { return p.err == nil }
