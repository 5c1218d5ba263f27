package ast

import "github.com/JesusMj16/Compilador/token"

// BinaryOp is the operator of a BinaryExpr.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
)

var binaryOpNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNeq: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpAnd: "&&", OpOr: "||",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=",
	OpMulAssign: "*=", OpDivAssign: "/=", OpModAssign: "%=",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// UnaryOp is the operator of a UnaryExpr.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
	OpPlus
)

var unaryOpNames = [...]string{OpNot: "!", OpNeg: "-", OpPlus: "+"}

func (op UnaryOp) String() string { return unaryOpNames[op] }

// BinaryExpr is `X Op Y`. Position is inherited from the left operand.
type BinaryExpr struct {
	X     Expr
	OpPos token.Pos
	Op    BinaryOp
	Y     Expr
}

func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }
func (*BinaryExpr) exprNode()        {}

// UnaryExpr is `Op X`, a prefix operator applied to X. Position is the
// operator's own token.
type UnaryExpr struct {
	OpPos token.Pos
	Op    UnaryOp
	X     Expr
}

func (x *UnaryExpr) Pos() token.Pos { return x.OpPos }
func (x *UnaryExpr) End() token.Pos { return x.X.End() }
func (*UnaryExpr) exprNode()        {}

// ParenExpr is `( X )`, kept only to report accurate End positions;
// parsing never needs it to change the tree shape since grouping is
// implicit in the recursive-descent structure.
type ParenExpr struct {
	LeftParen  token.Pos
	X          Expr
	RightParen token.Pos
}

func (x *ParenExpr) Pos() token.Pos { return x.LeftParen }
func (x *ParenExpr) End() token.Pos { return x.RightParen + 1 }
func (*ParenExpr) exprNode()        {}

// Ident is an identifier used as an expression, a binding name, or a type
// name.
type Ident struct {
	NamePos token.Pos
	Name    string
}

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return token.Pos(int(x.NamePos) + len(x.Name)) }
func (*Ident) exprNode()        {}

// NumberLit is a numeric literal, carried as its exact source text
// (decimal with optional fraction/exponent, hex, or binary).
type NumberLit struct {
	ValuePos token.Pos
	Value    string
}

func (x *NumberLit) Pos() token.Pos { return x.ValuePos }
func (x *NumberLit) End() token.Pos { return token.Pos(int(x.ValuePos) + len(x.Value)) }
func (*NumberLit) exprNode()        {}

// StringLit is a double-quoted string literal, including both quotes.
type StringLit struct {
	ValuePos token.Pos
	Value    string
}

func (x *StringLit) Pos() token.Pos { return x.ValuePos }
func (x *StringLit) End() token.Pos { return token.Pos(int(x.ValuePos) + len(x.Value)) }
func (*StringLit) exprNode()        {}

// CharLit is a single-quoted character literal, including both quotes.
type CharLit struct {
	ValuePos token.Pos
	Value    string
}

func (x *CharLit) Pos() token.Pos { return x.ValuePos }
func (x *CharLit) End() token.Pos { return token.Pos(int(x.ValuePos) + len(x.Value)) }
func (*CharLit) exprNode()        {}

// BoolLit is 'true' or 'false'.
type BoolLit struct {
	ValuePos token.Pos
	Value    bool
}

func (x *BoolLit) Pos() token.Pos { return x.ValuePos }
func (x *BoolLit) End() token.Pos {
	if x.Value {
		return x.ValuePos + token.Pos(len("true"))
	}
	return x.ValuePos + token.Pos(len("false"))
}
func (*BoolLit) exprNode() {}
