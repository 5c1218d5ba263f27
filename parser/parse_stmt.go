package parser

import (
	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/token"
)

// parseBlock parses Block -> '{' Statement* '}'.
func (p *parser) parseBlock() *ast.Block {
	lbrace := p.expect(token.LeftBrace)
	if !p.ok() {
		return nil
	}

	var list []ast.Stmt
	for p.ok() && p.tok != token.RightBrace && p.tok != token.EOF {
		stmt := p.parseStatement()
		if !p.ok() {
			return nil
		}
		list = append(list, stmt)
	}
	if !p.ok() {
		return nil
	}

	rbrace := p.expect(token.RightBrace)
	if !p.ok() {
		return nil
	}

	return &ast.Block{LeftBrace: lbrace, List: list, RightBrace: rbrace}
}

// parseStatement dispatches on the current token per the grammar's
// Statement production; it requires the trailing ';' for the statement
// kinds that the grammar marks as needing one.
func (p *parser) parseStatement() ast.Stmt {
	switch p.tok {
	case token.Let:
		stmt := p.parseLetStmt()
		if !p.ok() {
			return nil
		}
		p.expect(token.Semicolon)
		if !p.ok() {
			return nil
		}
		return stmt

	case token.If:
		return p.parseIfStmt()

	case token.While:
		return p.parseWhileStmt()

	case token.Return:
		stmt := p.parseReturnStmt()
		if !p.ok() {
			return nil
		}
		p.expect(token.Semicolon)
		if !p.ok() {
			return nil
		}
		return stmt

	case token.Break:
		pos := p.pos
		p.next()
		p.expect(token.Semicolon)
		if !p.ok() {
			return nil
		}
		return &ast.BreakStmt{Break: pos}

	case token.Continue:
		pos := p.pos
		p.next()
		p.expect(token.Semicolon)
		if !p.ok() {
			return nil
		}
		return &ast.ContinueStmt{Continue: pos}

	case token.LeftBrace:
		return p.parseBlock()

	default:
		expr := p.parseExpression()
		if !p.ok() {
			return nil
		}
		p.expect(token.Semicolon)
		if !p.ok() {
			return nil
		}
		return &ast.ExprStmt{X: expr}
	}
}

// parseLetStmt parses LetStmt -> 'let' ['mut'] IDENT [':' Type] ['=' Expression],
// where Type -> 'i32' | 'f64' | 'bool' | 'char'. The trailing ';' is the
// caller's responsibility.
func (p *parser) parseLetStmt() *ast.LetStmt {
	letPos := p.expect(token.Let)
	if !p.ok() {
		return nil
	}

	mutable := false
	if p.tok == token.Mut {
		mutable = true
		p.next()
	}

	name := p.parseIdent("expected identifier after 'let'")
	if !p.ok() {
		return nil
	}

	var typ *ast.Ident
	if p.tok == token.Colon {
		p.next()
		switch p.tok {
		case token.I32, token.F64, token.BoolKw, token.CharKw:
			typ = &ast.Ident{NamePos: p.pos, Name: p.lit}
			p.next()
		default:
			p.errorExpected(p.pos, "type name")
			return nil
		}
	}

	var value ast.Expr
	if p.tok == token.Assign {
		p.next()
		value = p.parseExpression()
		if !p.ok() {
			return nil
		}
	}

	return &ast.LetStmt{Let: letPos, Name: name, Mutable: mutable, Type: typ, Value: value}
}

// parseIfStmt parses IfStmt -> 'if' Expression Block ['else' (IfStmt | Block)].
// An `else if` is recursion into parseIfStmt, so the else-branch is itself
// an *ast.IfStmt rather than a *ast.Block.
func (p *parser) parseIfStmt() *ast.IfStmt {
	ifPos := p.expect(token.If)
	if !p.ok() {
		return nil
	}

	cond := p.parseExpression()
	if !p.ok() {
		return nil
	}

	body := p.parseBlock()
	if !p.ok() {
		return nil
	}

	stmt := &ast.IfStmt{If: ifPos, Cond: cond, Body: body}

	if p.tok == token.Else {
		p.next()
		if p.tok == token.If {
			stmt.Else = p.parseIfStmt()
		} else {
			stmt.Else = p.parseBlock()
		}
		if !p.ok() {
			return nil
		}
	}

	return stmt
}

// parseWhileStmt parses WhileStmt -> 'while' Expression Block.
func (p *parser) parseWhileStmt() *ast.WhileStmt {
	whilePos := p.expect(token.While)
	if !p.ok() {
		return nil
	}

	cond := p.parseExpression()
	if !p.ok() {
		return nil
	}

	body := p.parseBlock()
	if !p.ok() {
		return nil
	}

	return &ast.WhileStmt{While: whilePos, Cond: cond, Body: body}
}

// parseReturnStmt parses ReturnStmt -> 'return' [Expression]. The value is
// parsed only when the statement isn't immediately closed by ';'. The
// trailing ';' is the caller's responsibility.
func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	returnPos := p.expect(token.Return)
	if !p.ok() {
		return nil
	}

	var value ast.Expr
	if p.tok != token.Semicolon {
		value = p.parseExpression()
		if !p.ok() {
			return nil
		}
	}

	return &ast.ReturnStmt{Return: returnPos, Value: value}
}
