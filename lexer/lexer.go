// Package lexer implements the maximal-munch scanner for the compiled
// language: it classifies bytes, recognizes numeric literals in three
// bases, double-quoted strings, character literals, comments, and the
// single- and two-character operator/delimiter set, and post-classifies
// identifier lexemes against the keyword table.
package lexer

import (
	"fmt"

	"github.com/JesusMj16/Compilador/token"
)

// ErrorHandler is called for each lexer error with the error's position
// and message. It may be nil, in which case errors are silently counted.
type ErrorHandler func(pos token.Position, msg string)

// Lexer scans a single source buffer. A Lexer mutates only its own cursor
// and must not be shared across goroutines; two Lexer instances on two
// buffers are fully independent.
type Lexer struct {
	file *token.File
	src  []byte
	err  ErrorHandler

	ch         byte
	offset     int
	readOffset int

	ErrorCount int
}

// cursor is a saved scanning position used to roll back a tentative
// contextual match (hex/binary prefix, exponent) that turned out to have
// no legal continuation.
type cursor struct {
	offset     int
	readOffset int
	ch         byte
}

// NewLexer creates a Lexer that scans src, whose size must equal
// file.Size(). Position (1,1) corresponds to the first byte of src.
func NewLexer(file *token.File, src []byte, err ErrorHandler) *Lexer {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	l := &Lexer{file: file, src: src, err: err}
	l.advance()
	return l
}

// advance consumes the current byte and loads the next one, tracking line
// starts as it crosses a newline. Past the end of the buffer it is
// idempotent: ch becomes eof and offset pins to len(src).
func (l *Lexer) advance() {
	if l.readOffset >= len(l.src) {
		l.offset = len(l.src)
		if l.ch == '\n' {
			l.file.AddLine(l.offset)
		}
		l.ch = eof
		return
	}
	if l.ch == '\n' {
		l.file.AddLine(l.readOffset)
	}
	l.offset = l.readOffset
	l.ch = l.src[l.readOffset]
	l.readOffset++
}

func (l *Lexer) peek() byte {
	if l.readOffset < len(l.src) {
		return l.src[l.readOffset]
	}
	return eof
}

func (l *Lexer) save() cursor {
	return cursor{offset: l.offset, readOffset: l.readOffset, ch: l.ch}
}

func (l *Lexer) restore(c cursor) {
	l.offset, l.readOffset, l.ch = c.offset, c.readOffset, c.ch
}

func (l *Lexer) error(offset int, msg string) {
	l.ErrorCount++
	if l.err != nil {
		l.err(l.file.Position(l.file.Pos(offset)), msg)
	}
}

// Scan returns the next token: its starting position, kind, and exact
// lexeme. It always returns; at end-of-input it returns the EOF token with
// the current position and never advances past it again. Comments and
// whitespace are skipped and never produce tokens.
func (l *Lexer) Scan() (pos token.Pos, tok token.Token, lit string) {
	l.skipIgnorable()

	pos = l.file.Pos(l.offset)

	switch {
	case l.ch == eof:
		return pos, token.EOF, ""

	case isIdentStart(l.ch):
		lit = l.scanIdentifier()
		return pos, token.Lookup(lit), lit

	case isDigit(l.ch):
		return pos, token.Number, l.scanNumber()

	case l.ch == '"':
		text, ok := l.scanString()
		if !ok {
			l.error(l.file.Offset(pos), "string literal not terminated")
			return pos, token.Illegal, text
		}
		return pos, token.String, text

	case l.ch == '\'':
		text, ok := l.scanChar()
		if !ok {
			l.error(l.file.Offset(pos), "char literal malformed")
			return pos, token.Illegal, text
		}
		return pos, token.Char, text

	default:
		tok, lit = l.scanOperatorOrDelimiter()
		if tok == token.Illegal {
			l.error(l.file.Offset(pos), fmt.Sprintf("illegal character %#U", rune(lit[0])))
		}
		return pos, tok, lit
	}
}

// skipIgnorable discards whitespace, newlines, and comments. An
// unterminated block comment discards to end-of-input without emitting a
// token for the comment.
func (l *Lexer) skipIgnorable() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.advance()

		case l.ch == '/' && l.peek() == '/':
			l.advance()
			l.advance()
			for l.ch != '\n' && l.ch != eof {
				l.advance()
			}

		case l.ch == '/' && l.peek() == '*':
			l.advance()
			l.advance()
			for {
				if l.ch == eof {
					return
				}
				if l.ch == '*' && l.peek() == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}

		default:
			return
		}
	}
}

func (l *Lexer) scanIdentifier() string {
	offs := l.offset
	for isIdentPart(l.ch) {
		l.advance()
	}
	return string(l.src[offs:l.offset])
}

// scanNumber recognizes 0x/0X hex and 0b/0B binary integers, and decimal
// numbers with an optional fractional part and an optional exponent; hex
// and binary literals take no fraction or exponent. The hex/bin prefix
// and the exponent are contextual extensions the flat transition table
// cannot encode: each is tried tentatively and rolled back to the last
// accepting position (the bare leading digit, or the mantissa before 'e')
// if it turns out to have no legal continuation.
func (l *Lexer) scanNumber() string {
	offs := l.offset

	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.advance() // consume '0'
		rollback := l.save()
		l.advance() // consume 'x'/'X'
		have := false
		for isHexDigit(l.ch) {
			have = true
			l.advance()
		}
		if !have {
			l.restore(rollback)
		}
		return string(l.src[offs:l.offset])
	}

	if l.ch == '0' && (l.peek() == 'b' || l.peek() == 'B') {
		l.advance() // consume '0'
		rollback := l.save()
		l.advance() // consume 'b'/'B'
		have := false
		for isBinDigit(l.ch) {
			have = true
			l.advance()
		}
		if !have {
			l.restore(rollback)
		}
		return string(l.src[offs:l.offset])
	}

	for isDigit(l.ch) {
		l.advance()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		l.advance() // consume '.'
		for isDigit(l.ch) {
			l.advance()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		rollback := l.save()
		l.advance()
		if l.ch == '+' || l.ch == '-' {
			l.advance()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.advance()
			}
		} else {
			l.restore(rollback)
		}
	}

	return string(l.src[offs:l.offset])
}

// scanString accepts bytes until an unescaped closing quote. A backslash
// accepts any single following byte unconditionally. A raw newline or
// end-of-input before the closing quote terminates the lexeme as
// malformed (the second return value is false).
func (l *Lexer) scanString() (string, bool) {
	offs := l.offset
	l.advance() // opening quote
	for {
		switch {
		case l.ch == eof || l.ch == '\n':
			return string(l.src[offs:l.offset]), false
		case l.ch == '\\':
			l.advance()
			if l.ch != eof {
				l.advance()
			}
		case l.ch == '"':
			l.advance()
			return string(l.src[offs:l.offset]), true
		default:
			l.advance()
		}
	}
}

// scanChar accepts exactly one content byte (optionally backslash-escaped)
// followed by a closing apostrophe. Anything else - an empty '', an
// unescaped backslash at end of input, two content bytes, a raw newline,
// or end-of-input before the close - is malformed.
func (l *Lexer) scanChar() (string, bool) {
	offs := l.offset
	l.advance() // opening apostrophe

	switch {
	case l.ch == eof || l.ch == '\n' || l.ch == '\'':
		return string(l.src[offs:l.offset]), false
	case l.ch == '\\':
		l.advance()
		if l.ch == eof || l.ch == '\n' {
			return string(l.src[offs:l.offset]), false
		}
		l.advance()
	default:
		l.advance()
	}

	if l.ch != '\'' {
		return string(l.src[offs:l.offset]), false
	}
	l.advance()
	return string(l.src[offs:l.offset]), true
}

// scanOperatorOrDelimiter consumes a single- or two-character operator, or
// a one-character delimiter, using greedy (maximal-munch) lookahead for
// the two-character set. An unrecognized byte is consumed and returned as
// token.Illegal.
func (l *Lexer) scanOperatorOrDelimiter() (token.Token, string) {
	offs := l.offset
	ch := l.ch
	l.advance()

	two := func(next byte, tok token.Token, lit string) (token.Token, string, bool) {
		if l.ch == next {
			l.advance()
			return tok, lit, true
		}
		return 0, "", false
	}

	switch ch {
	case ';':
		return token.Semicolon, ";"
	case ',':
		return token.Comma, ","
	case ':':
		return token.Colon, ":"
	case '(':
		return token.LeftParen, "("
	case ')':
		return token.RightParen, ")"
	case '{':
		return token.LeftBrace, "{"
	case '}':
		return token.RightBrace, "}"
	case '[':
		return token.LeftBrack, "["
	case ']':
		return token.RightBrack, "]"
	case '.':
		return token.Period, "."

	case '+':
		if tok, lit, ok := two('+', token.Inc, "++"); ok {
			return tok, lit
		}
		if tok, lit, ok := two('=', token.AddAssign, "+="); ok {
			return tok, lit
		}
		return token.Add, "+"
	case '-':
		if tok, lit, ok := two('-', token.Dec, "--"); ok {
			return tok, lit
		}
		if tok, lit, ok := two('=', token.SubAssign, "-="); ok {
			return tok, lit
		}
		return token.Sub, "-"
	case '*':
		if tok, lit, ok := two('=', token.MulAssign, "*="); ok {
			return tok, lit
		}
		return token.Mul, "*"
	case '/':
		if tok, lit, ok := two('=', token.QuoAssign, "/="); ok {
			return tok, lit
		}
		return token.Quo, "/"
	case '%':
		if tok, lit, ok := two('=', token.RemAssign, "%="); ok {
			return tok, lit
		}
		return token.Rem, "%"
	case '=':
		if tok, lit, ok := two('=', token.Equal, "=="); ok {
			return tok, lit
		}
		return token.Assign, "="
	case '!':
		if tok, lit, ok := two('=', token.NotEqual, "!="); ok {
			return tok, lit
		}
		return token.LogicNot, "!"
	case '&':
		if tok, lit, ok := two('&', token.LogicAnd, "&&"); ok {
			return tok, lit
		}
		return token.Amp, "&"
	case '|':
		if tok, lit, ok := two('|', token.LogicOr, "||"); ok {
			return tok, lit
		}
		return token.Pipe, "|"
	case '<':
		if tok, lit, ok := two('=', token.LessEqual, "<="); ok {
			return tok, lit
		}
		return token.Less, "<"
	case '>':
		if tok, lit, ok := two('=', token.GreaterEqual, ">="); ok {
			return tok, lit
		}
		return token.Greater, ">"

	default:
		return token.Illegal, string(l.src[offs:l.offset])
	}
}
