package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/JesusMj16/Compilador/token"
)

// Fprint writes an indented tree representation of node to w, resolving
// positions against fset. Unlike go/ast.Fprint this walks the small,
// closed set of concrete node types directly instead of using reflection:
// the grammar has no extensible node kinds, so a type switch is simpler
// and keeps field order under our control.
func Fprint(w io.Writer, fset *token.FileSet, node Node) error {
	p := &printer{w: w, fset: fset}
	p.print(node, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	fset *token.FileSet
	err error
}

func (p *printer) printf(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
	if err != nil {
		p.err = err
	}
}

func (p *printer) pos(pos token.Pos) string {
	return p.fset.Position(pos).String()
}

func (p *printer) print(node Node, depth int) {
	if node == nil || p.err != nil {
		return
	}
	switch n := node.(type) {
	case *Program:
		p.printf(depth, "Program @ %s", p.pos(n.FileStart))
		for _, item := range n.Items {
			p.print(item, depth+1)
		}

	case *Function:
		p.printf(depth, "Function %q @ %s", n.Name.Name, p.pos(n.Fn))
		p.print(n.Body, depth+1)

	case *Block:
		p.printf(depth, "Block @ %s", p.pos(n.LeftBrace))
		for _, stmt := range n.List {
			p.print(stmt, depth+1)
		}

	case *LetStmt:
		typ := "<inferred>"
		if n.Type != nil {
			typ = n.Type.Name
		}
		p.printf(depth, "LetStmt name=%q mut=%v type=%s @ %s", n.Name.Name, n.Mutable, typ, p.pos(n.Let))
		p.print(n.Value, depth+1)

	case *IfStmt:
		p.printf(depth, "IfStmt @ %s", p.pos(n.If))
		p.print(n.Cond, depth+1)
		p.print(n.Body, depth+1)
		if n.Else != nil {
			p.print(n.Else, depth+1)
		}

	case *WhileStmt:
		p.printf(depth, "WhileStmt @ %s", p.pos(n.While))
		p.print(n.Cond, depth+1)
		p.print(n.Body, depth+1)

	case *ReturnStmt:
		p.printf(depth, "ReturnStmt @ %s", p.pos(n.Return))
		p.print(n.Value, depth+1)

	case *BreakStmt:
		p.printf(depth, "BreakStmt @ %s", p.pos(n.Break))

	case *ContinueStmt:
		p.printf(depth, "ContinueStmt @ %s", p.pos(n.Continue))

	case *ExprStmt:
		p.printf(depth, "ExprStmt @ %s", p.pos(n.X.Pos()))
		p.print(n.X, depth+1)

	case *BinaryExpr:
		p.printf(depth, "BinaryExpr op=%s @ %s", n.Op, p.pos(n.OpPos))
		p.print(n.X, depth+1)
		p.print(n.Y, depth+1)

	case *UnaryExpr:
		p.printf(depth, "UnaryExpr op=%s @ %s", n.Op, p.pos(n.OpPos))
		p.print(n.X, depth+1)

	case *ParenExpr:
		p.print(n.X, depth)

	case *Ident:
		p.printf(depth, "Ident %q @ %s", n.Name, p.pos(n.NamePos))

	case *NumberLit:
		p.printf(depth, "NumberLit %s @ %s", n.Value, p.pos(n.ValuePos))

	case *StringLit:
		p.printf(depth, "StringLit %s @ %s", n.Value, p.pos(n.ValuePos))

	case *CharLit:
		p.printf(depth, "CharLit %s @ %s", n.Value, p.pos(n.ValuePos))

	case *BoolLit:
		p.printf(depth, "BoolLit %v @ %s", n.Value, p.pos(n.ValuePos))

	default:
		p.printf(depth, "<unknown node %T>", n)
	}
}
