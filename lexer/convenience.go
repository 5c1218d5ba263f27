package lexer

import "github.com/JesusMj16/Compilador/token"

// shared is the module-private Lexer behind NextToken. It is a
// re-architecture hazard inherited from the original convenience API:
// callers wanting isolation should construct their own Lexer with
// NewLexer instead. shared resets itself whenever it yields EOF so a
// later call with a different source starts clean.
var shared *Lexer

// NextToken scans the next token from src using a module-private Lexer,
// initializing or resetting it as needed. It is a thin convenience shim
// over NewLexer/Scan for callers that don't need an owned Lexer instance;
// it is not safe for concurrent use.
func NextToken(fset *token.FileSet, filename string, src []byte, err ErrorHandler) (pos token.Pos, tok token.Token, lit string) {
	if shared == nil {
		file := fset.AddFile(filename, -1, len(src))
		shared = NewLexer(file, src, err)
	}
	pos, tok, lit = shared.Scan()
	if tok == token.EOF {
		shared = nil
	}
	return pos, tok, lit
}
