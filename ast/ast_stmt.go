package ast

import "github.com/JesusMj16/Compilador/token"

// Function is a top-level item: 'fn' IDENT '(' ')' Block. Parameters and
// a return type are not part of this grammar.
type Function struct {
	Fn   token.Pos
	Name *Ident
	Body *Block
}

func (f *Function) Pos() token.Pos { return f.Fn }
func (f *Function) End() token.Pos { return f.Body.End() }
func (*Function) stmtNode()        {}

// Block is a brace-delimited statement list.
type Block struct {
	LeftBrace  token.Pos
	List       []Stmt
	RightBrace token.Pos
}

func (b *Block) Pos() token.Pos { return b.LeftBrace }
func (b *Block) End() token.Pos { return b.RightBrace + 1 }
func (*Block) stmtNode()        {}

// LetStmt declares a binding, optionally mutable, with an optional type
// annotation and an optional initializer.
type LetStmt struct {
	Let     token.Pos
	Name    *Ident
	Mutable bool
	Type    *Ident // i32 / f64 / bool / char; nil if no annotation
	Value   Expr   // nil if no initializer
}

func (s *LetStmt) Pos() token.Pos { return s.Let }
func (s *LetStmt) End() token.Pos {
	switch {
	case s.Value != nil:
		return s.Value.End()
	case s.Type != nil:
		return s.Type.End()
	default:
		return s.Name.End()
	}
}
func (*LetStmt) stmtNode() {}

// IfStmt is 'if' Expression Block ['else' (IfStmt | Block)]. An else-if
// chain is represented by Else holding another *IfStmt rather than a
// *Block.
type IfStmt struct {
	If   token.Pos
	Cond Expr
	Body *Block
	Else Stmt // *IfStmt, *Block, or nil
}

func (s *IfStmt) Pos() token.Pos { return s.If }
func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Body.End()
}
func (*IfStmt) stmtNode() {}

// WhileStmt is 'while' Expression Block.
type WhileStmt struct {
	While token.Pos
	Cond  Expr
	Body  *Block
}

func (s *WhileStmt) Pos() token.Pos { return s.While }
func (s *WhileStmt) End() token.Pos { return s.Body.End() }
func (*WhileStmt) stmtNode()        {}

// ReturnStmt is 'return' [Expression].
type ReturnStmt struct {
	Return token.Pos
	Value  Expr // nil if no return value
}

func (s *ReturnStmt) Pos() token.Pos { return s.Return }
func (s *ReturnStmt) End() token.Pos {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Return + token.Pos(len("return"))
}
func (*ReturnStmt) stmtNode() {}

// BreakStmt is 'break'.
type BreakStmt struct{ Break token.Pos }

func (s *BreakStmt) Pos() token.Pos { return s.Break }
func (s *BreakStmt) End() token.Pos { return s.Break + token.Pos(len("break")) }
func (*BreakStmt) stmtNode()        {}

// ContinueStmt is 'continue'.
type ContinueStmt struct{ Continue token.Pos }

func (s *ContinueStmt) Pos() token.Pos { return s.Continue }
func (s *ContinueStmt) End() token.Pos { return s.Continue + token.Pos(len("continue")) }
func (*ContinueStmt) stmtNode()        {}

// ExprStmt owns exactly one expression child.
type ExprStmt struct{ X Expr }

func (s *ExprStmt) Pos() token.Pos { return s.X.Pos() }
func (s *ExprStmt) End() token.Pos { return s.X.End() }
func (*ExprStmt) stmtNode()        {}
