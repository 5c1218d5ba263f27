package parser

import (
	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/token"
)

// parseExpression is the entry point of the precedence cascade:
// Expression -> Assignment.
func (p *parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative: Assignment -> LogicOr (('='|'+='|...) Assignment)?.
func (p *parser) parseAssignment() ast.Expr {
	left := p.parseLogicOr()
	if !p.ok() {
		return nil
	}

	var op ast.BinaryOp
	switch p.tok {
	case token.Assign:
		op = ast.OpAssign
	case token.AddAssign:
		op = ast.OpAddAssign
	case token.SubAssign:
		op = ast.OpSubAssign
	case token.MulAssign:
		op = ast.OpMulAssign
	case token.QuoAssign:
		op = ast.OpDivAssign
	case token.RemAssign:
		op = ast.OpModAssign
	default:
		return left
	}

	opPos := p.pos
	p.next()
	right := p.parseAssignment()
	if !p.ok() {
		return nil
	}
	return &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
}

// parseLogicOr is left-associative: LogicOr -> LogicAnd ('||' LogicAnd)*.
func (p *parser) parseLogicOr() ast.Expr {
	left := p.parseLogicAnd()
	if !p.ok() {
		return nil
	}
	for p.tok == token.LogicOr {
		opPos := p.pos
		p.next()
		right := p.parseLogicAnd()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: ast.OpOr, Y: right}
	}
	return left
}

// parseLogicAnd is left-associative: LogicAnd -> Equality ('&&' Equality)*.
func (p *parser) parseLogicAnd() ast.Expr {
	left := p.parseEquality()
	if !p.ok() {
		return nil
	}
	for p.tok == token.LogicAnd {
		opPos := p.pos
		p.next()
		right := p.parseEquality()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: ast.OpAnd, Y: right}
	}
	return left
}

// parseEquality is left-associative: Equality -> Comparison (('=='|'!=') Comparison)*.
func (p *parser) parseEquality() ast.Expr {
	left := p.parseComparison()
	if !p.ok() {
		return nil
	}
	for p.tok == token.Equal || p.tok == token.NotEqual {
		op := ast.OpEq
		if p.tok == token.NotEqual {
			op = ast.OpNeq
		}
		opPos := p.pos
		p.next()
		right := p.parseComparison()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
	}
	return left
}

// parseComparison is left-associative: Comparison -> Term (('<'|'<='|'>'|'>=') Term)*.
func (p *parser) parseComparison() ast.Expr {
	left := p.parseTerm()
	if !p.ok() {
		return nil
	}
	for {
		var op ast.BinaryOp
		switch p.tok {
		case token.Less:
			op = ast.OpLt
		case token.LessEqual:
			op = ast.OpLe
		case token.Greater:
			op = ast.OpGt
		case token.GreaterEqual:
			op = ast.OpGe
		default:
			return left
		}
		opPos := p.pos
		p.next()
		right := p.parseTerm()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
	}
}

// parseTerm is left-associative: Term -> Factor (('+'|'-') Factor)*.
func (p *parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	if !p.ok() {
		return nil
	}
	for p.tok == token.Add || p.tok == token.Sub {
		op := ast.OpAdd
		if p.tok == token.Sub {
			op = ast.OpSub
		}
		opPos := p.pos
		p.next()
		right := p.parseFactor()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
	}
	return left
}

// parseFactor is left-associative: Factor -> Unary (('*'|'/'|'%') Unary)*.
func (p *parser) parseFactor() ast.Expr {
	left := p.parseUnary()
	if !p.ok() {
		return nil
	}
	for {
		var op ast.BinaryOp
		switch p.tok {
		case token.Mul:
			op = ast.OpMul
		case token.Quo:
			op = ast.OpDiv
		case token.Rem:
			op = ast.OpMod
		default:
			return left
		}
		opPos := p.pos
		p.next()
		right := p.parseUnary()
		if !p.ok() {
			return nil
		}
		left = &ast.BinaryExpr{X: left, OpPos: opPos, Op: op, Y: right}
	}
}

// parseUnary is right-associative prefix: Unary -> ('!'|'-'|'+') Unary | Primary.
func (p *parser) parseUnary() ast.Expr {
	var op ast.UnaryOp
	switch p.tok {
	case token.LogicNot:
		op = ast.OpNot
	case token.Sub:
		op = ast.OpNeg
	case token.Add:
		op = ast.OpPlus
	default:
		return p.parsePrimary()
	}

	opPos := p.pos
	p.next()
	x := p.parseUnary()
	if !p.ok() {
		return nil
	}
	return &ast.UnaryExpr{OpPos: opPos, Op: op, X: x}
}

// parsePrimary parses Primary -> NUMBER | STRING | CHAR | 'true' | 'false'
// | IDENT | '(' Expression ')'.
func (p *parser) parsePrimary() ast.Expr {
	switch p.tok {
	case token.Number:
		x := &ast.NumberLit{ValuePos: p.pos, Value: p.lit}
		p.next()
		return x

	case token.String:
		x := &ast.StringLit{ValuePos: p.pos, Value: p.lit}
		p.next()
		return x

	case token.Char:
		x := &ast.CharLit{ValuePos: p.pos, Value: p.lit}
		p.next()
		return x

	case token.True:
		x := &ast.BoolLit{ValuePos: p.pos, Value: true}
		p.next()
		return x

	case token.False:
		x := &ast.BoolLit{ValuePos: p.pos, Value: false}
		p.next()
		return x

	case token.Ident:
		x := &ast.Ident{NamePos: p.pos, Name: p.lit}
		p.next()
		return x

	case token.LeftParen:
		lparen := p.pos
		p.next()
		x := p.parseExpression()
		if !p.ok() {
			return nil
		}
		rparen := p.expect(token.RightParen)
		if !p.ok() {
			return nil
		}
		return &ast.ParenExpr{LeftParen: lparen, X: x, RightParen: rparen}

	default:
		p.error(p.pos, "expression expected")
		return nil
	}
}
