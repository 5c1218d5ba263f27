package lexer_test

import (
	"fmt"

	"github.com/JesusMj16/Compilador/lexer"
	"github.com/JesusMj16/Compilador/token"
)

func ExampleLexer() {
	source := `fn main() {
	let x: i32 = 42;
}
`
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(source))
	l := lexer.NewLexer(file, []byte(source), nil)

	for {
		pos, tok, lit := l.Scan()
		if tok == token.EOF {
			break
		}
		fmt.Printf("%s\t%s\t%q\n", fset.Position(pos), tok, lit)
	}

	// Output:
	// 1:1	fn	"fn"
	// 1:4	IDENT	"main"
	// 1:8	(	"("
	// 1:9	)	")"
	// 1:11	{	"{"
	// 2:2	let	"let"
	// 2:6	IDENT	"x"
	// 2:7	:	":"
	// 2:9	i32	"i32"
	// 2:13	=	"="
	// 2:15	NUMBER	"42"
	// 2:17	;	";"
	// 3:1	}	"}"
}
