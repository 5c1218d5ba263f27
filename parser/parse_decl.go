package parser

import (
	"github.com/JesusMj16/Compilador/ast"
	"github.com/JesusMj16/Compilador/token"
)

// parseProgram parses Program -> (Function | Statement)* EOF. It aborts
// and returns nil as soon as any item fails, discarding the partial tree.
func (p *parser) parseProgram() *ast.Program {
	fileStart := p.pos

	var items []ast.Stmt
	for p.ok() && p.tok != token.EOF {
		var item ast.Stmt
		if p.tok == token.Fn {
			item = p.parseFunction()
		} else {
			item = p.parseStatement()
		}
		if !p.ok() {
			return nil
		}
		items = append(items, item)
	}
	if !p.ok() {
		return nil
	}

	return &ast.Program{
		Items:     items,
		FileStart: fileStart,
		FileEnd:   p.pos,
	}
}

// parseFunction parses Function -> 'fn' IDENT '(' ')' Block. There are no
// parameters or return-type annotations in this grammar.
func (p *parser) parseFunction() *ast.Function {
	fnPos := p.expect(token.Fn)
	if !p.ok() {
		return nil
	}

	name := p.parseIdent("expected function name")
	if !p.ok() {
		return nil
	}

	p.expect(token.LeftParen)
	if !p.ok() {
		return nil
	}
	p.expect(token.RightParen)
	if !p.ok() {
		return nil
	}

	body := p.parseBlock()
	if !p.ok() {
		return nil
	}

	return &ast.Function{Fn: fnPos, Name: name, Body: body}
}

// parseIdent requires an IDENT token, reporting msg (verbatim) as the
// error if it is missing.
func (p *parser) parseIdent(msg string) *ast.Ident {
	if p.tok != token.Ident {
		p.error(p.pos, msg)
		return nil
	}
	id := &ast.Ident{NamePos: p.pos, Name: p.lit}
	p.next()
	return id
}
