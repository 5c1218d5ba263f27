package lexer

import "github.com/JesusMj16/Compilador/token"

// Token is one scanned lexeme as returned by TokenizeAll: its starting
// position, its kind, and its exact source text.
type Token struct {
	Pos  token.Pos
	Kind token.Token
	Lit  string
}

// TokenizeAll scans src to completion and returns every token in order,
// the last one always token.EOF. It is the batch form of repeatedly
// calling Scan; callers that want to start consuming before the whole
// file is scanned should drive a Lexer directly instead.
func TokenizeAll(file *token.File, src []byte, err ErrorHandler) []Token {
	l := NewLexer(file, src, err)

	toks := make([]Token, 0, 64)
	for {
		pos, tok, lit := l.Scan()
		toks = append(toks, Token{Pos: pos, Kind: tok, Lit: lit})
		if tok == token.EOF {
			return toks
		}
	}
}
