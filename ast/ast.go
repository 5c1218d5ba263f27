// Package ast declares the tagged-variant syntax tree produced by the
// parser: a Program whose children mix function declarations and
// top-level statements in source order.
package ast

import "github.com/JesusMj16/Compilador/token"

// Node is implemented by every node in the tree. Position of a composite
// node is inherited from the first terminal contributing to it.
type Node interface {
	Pos() token.Pos // position of the first character belonging to the node
	End() token.Pos // position of the first character immediately after the node
}

// Stmt is implemented by all statement nodes, including Function (a
// top-level item that is syntactically a peer of statements).
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the tree: an ordered list of function
// declarations and top-level statements.
type Program struct {
	Items      []Stmt
	FileStart  token.Pos
	FileEnd    token.Pos
}

func (p *Program) Pos() token.Pos { return p.FileStart }
func (p *Program) End() token.Pos { return p.FileEnd }
