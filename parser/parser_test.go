package parser

import (
	"strings"
	"testing"

	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/token"
)

func TestParseFunction(t *testing.T) {
	testCases := []struct {
		src     string
		wantErr string
	}{
		{"fn main() {}", ""},
		{"fn main() { let x: i32 = 42; }", ""},
		{"fn add() { return; }", ""},

		{"fn () {}", "expected function name"},
		{"fn main { }", "expected '('"},
		{"fn main( { }", "expected ')'"},
		{"fn main()", "expected '{'"},
	}

	for _, tc := range testCases {
		checkParse(t, tc.src, tc.wantErr)
	}
}

func TestParseLetStmt(t *testing.T) {
	testCases := []struct {
		src     string
		wantErr string
	}{
		{"fn f() { let x = 1; }", ""},
		{"fn f() { let mut x = 1; }", ""},
		{"fn f() { let x: i32 = 1; }", ""},
		{"fn f() { let x: f64; }", ""},
		{"fn f() { let x: bool = true; }", ""},
		{"fn f() { let x: char = 'a'; }", ""},

		{"fn f() { let x: 42 = 1; }", "expected type name"},
		{"fn f() { let x = 1 }", "expected ';'"},
		{"fn f() { let = 1; }", "expected identifier"},
	}

	for _, tc := range testCases {
		checkParse(t, tc.src, tc.wantErr)
	}
}

func TestParseIfElseIf(t *testing.T) {
	src := `
	fn f() {
		if a {
			return 1;
		} else if b {
			return 2;
		} else {
			return 3;
		}
	}`

	prog := mustParse(t, src)
	fn := prog.Items[0].(*ast.Function)
	outer := fn.Body.List[0].(*ast.IfStmt)

	middle, ok := outer.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("outer.Else = %T, want *ast.IfStmt", outer.Else)
	}
	if _, ok := middle.Else.(*ast.Block); !ok {
		t.Fatalf("middle.Else = %T, want *ast.Block", middle.Else)
	}
}

func TestParseWhileBreakContinue(t *testing.T) {
	src := `
	fn f() {
		while x < 10 {
			if x == 5 {
				break;
			}
			continue;
		}
	}`
	mustParse(t, src)
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 1 + 2 * 3 should bind as 1 + (2 * 3): the outer node is '+'
	// with a '*' on the right.
	src := "fn f() { let x = 1 + 2 * 3; }"
	prog := mustParse(t, src)
	fn := prog.Items[0].(*ast.Function)
	let := fn.Body.List[0].(*ast.LetStmt)
	add, ok := let.Value.(*ast.BinaryExpr)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("top-level op = %#v, want OpAdd", let.Value)
	}
	mul, ok := add.Y.(*ast.BinaryExpr)
	if !ok || mul.Op != ast.OpMul {
		t.Fatalf("right operand = %#v, want OpMul", add.Y)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	// a = b = c parses as a = (b = c).
	src := "fn f() { a = b = c; }"
	prog := mustParse(t, src)
	fn := prog.Items[0].(*ast.Function)
	exprStmt := fn.Body.List[0].(*ast.ExprStmt)
	outer, ok := exprStmt.X.(*ast.BinaryExpr)
	if !ok || outer.Op != ast.OpAssign {
		t.Fatalf("outer = %#v, want OpAssign", exprStmt.X)
	}
	if _, ok := outer.X.(*ast.Ident); !ok {
		t.Fatalf("outer.X = %#v, want *ast.Ident", outer.X)
	}
	inner, ok := outer.Y.(*ast.BinaryExpr)
	if !ok || inner.Op != ast.OpAssign {
		t.Fatalf("inner = %#v, want OpAssign", outer.Y)
	}
}

func TestParseUnary(t *testing.T) {
	src := "fn f() { let x = !-+a; }"
	prog := mustParse(t, src)
	fn := prog.Items[0].(*ast.Function)
	let := fn.Body.List[0].(*ast.LetStmt)

	not, ok := let.Value.(*ast.UnaryExpr)
	if !ok || not.Op != ast.OpNot {
		t.Fatalf("outer = %#v, want OpNot", let.Value)
	}
	neg, ok := not.X.(*ast.UnaryExpr)
	if !ok || neg.Op != ast.OpNeg {
		t.Fatalf("middle = %#v, want OpNeg", not.X)
	}
	plus, ok := neg.X.(*ast.UnaryExpr)
	if !ok || plus.Op != ast.OpPlus {
		t.Fatalf("inner = %#v, want OpPlus", neg.X)
	}
	if _, ok := plus.X.(*ast.Ident); !ok {
		t.Fatalf("innermost = %#v, want *ast.Ident", plus.X)
	}
}

func TestParseParenExpr(t *testing.T) {
	testCases := []struct {
		src     string
		wantErr string
	}{
		{"fn f() { let x = (1 + 2) * 3; }", ""},
		{"fn f() { let x = (1 + 2; }", "expected ')'"},
		{"fn f() { let x = a + * b; }", "expression expected"},
	}

	for _, tc := range testCases {
		checkParse(t, tc.src, tc.wantErr)
	}
}

func TestParseLiterals(t *testing.T) {
	src := `fn f() { let a = 0xFF + 0b10; let b = 1.5e+3; let c = "a\"b"; let d = 'x'; }`
	prog := mustParse(t, src)
	fn := prog.Items[0].(*ast.Function)

	letA := fn.Body.List[0].(*ast.LetStmt)
	add := letA.Value.(*ast.BinaryExpr)
	if lit, ok := add.X.(*ast.NumberLit); !ok || lit.Value != "0xFF" {
		t.Fatalf("letA.X = %#v", add.X)
	}
	if lit, ok := add.Y.(*ast.NumberLit); !ok || lit.Value != "0b10" {
		t.Fatalf("letA.Y = %#v", add.Y)
	}

	letB := fn.Body.List[1].(*ast.LetStmt)
	if lit, ok := letB.Value.(*ast.NumberLit); !ok || lit.Value != "1.5e+3" {
		t.Fatalf("letB.Value = %#v", letB.Value)
	}

	letC := fn.Body.List[2].(*ast.LetStmt)
	if _, ok := letC.Value.(*ast.StringLit); !ok {
		t.Fatalf("letC.Value = %#v, want *ast.StringLit", letC.Value)
	}

	letD := fn.Body.List[3].(*ast.LetStmt)
	if _, ok := letD.Value.(*ast.CharLit); !ok {
		t.Fatalf("letD.Value = %#v, want *ast.CharLit", letD.Value)
	}
}

func TestParseFirstErrorWins(t *testing.T) {
	// Two errors are present (missing name, missing body); only the first
	// is ever reported since there is no panic-mode recovery.
	checkParse(t, "fn () ", "expected function name")
}

func mustParse(t testing.TB, src string) *ast.Program {
	t.Helper()
	fset := token.NewFileSet()
	prog, err := ParseFile(fset, "", src)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", src, err)
	}
	return prog
}

func checkParse(t testing.TB, src, wantErr string) {
	t.Helper()
	fset := token.NewFileSet()
	_, err := ParseFile(fset, "", src)
	if err == nil {
		if wantErr != "" {
			t.Errorf("%s: got no error, want one containing %q", src, wantErr)
		}
		return
	}

	have := err.Error()
	switch {
	case wantErr == "":
		t.Errorf("%s: unmatched error:\n%s\n", src, have)
	case !strings.Contains(have, wantErr):
		t.Errorf("%s: error mismatch:\nhave: %s\nwant (substring): %s\n", src, have, wantErr)
	}
}
