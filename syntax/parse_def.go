package syntax

import "hastec/ast"

// declaration := ('const' | 'var') IDENT [':' expr] ['=' expr] ';' ;
func (p *Parser) parseDecl() (*ast.Decl, bool) {
	startTok := p.tok

	var constant bool
	switch p.tok.Kind {
	case TOK_CONST:
		constant = true
	case TOK_VAR:
	default:
		p.rejectExpected("a declaration")
		return nil, false
	}

	p.next()

	nameTok, ok := p.want(TOK_IDENT)
	if !ok {
		return nil, false
	}

	decl := &ast.Decl{
		Constant: constant,
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
	}

	if p.has(TOK_COLON) {
		p.next()

		if decl.TypeExpr, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}

	if p.has(TOK_ASSIGN) {
		p.next()

		if decl.Value, ok = p.parseExpr(); !ok {
			return nil, false
		}
	}

	if _, ok := p.want(TOK_SEMI); !ok {
		return nil, false
	}

	decl.ASTBase = ast.NewASTBaseOver(startTok.Span, p.lookbehind.Span)
	return decl, true
}
