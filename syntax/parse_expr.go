package syntax

import (
	"hastec/ast"
	"hastec/report"
	"hastec/types"
	"strconv"
)

// Enumeration of binding precedences from lowest to highest.
const (
	PREC_NONE    = iota
	PREC_TERM    // + -
	PREC_FACTOR  // * /
	PREC_POWER   // **
	PREC_UNARY   // prefix + -
	PREC_PRIMARY // literals, identifiers, groupings
)

// prefixHandler parses an expression beginning with the current token.
type prefixHandler func(p *Parser) (ast.ASTExpr, bool)

// infixHandler parses the rest of an expression whose left operand has already
// been parsed.  The parser is positioned on the infix token.
type infixHandler func(p *Parser, lhs ast.ASTExpr) (ast.ASTExpr, bool)

// parseRule is the parsing rule for a token kind.
type parseRule struct {
	prefix     prefixHandler
	infix      infixHandler
	prec       int
	rightAssoc bool
}

// parseRules maps token kinds to their parsing rules.  Token kinds with no
// entry have neither a prefix nor an infix handler.
var parseRules map[int]parseRule

// binaryOps maps operator token kinds to their operator kinds.
var binaryOps = map[int]int{
	TOK_PLUS:  types.OpAdd,
	TOK_MINUS: types.OpSub,
	TOK_STAR:  types.OpMul,
	TOK_DIV:   types.OpDiv,
	TOK_POW:   types.OpPow,
}

func init() {
	parseRules = map[int]parseRule{
		TOK_PLUS:     {prefix: (*Parser).parseUnary, infix: (*Parser).parseBinary, prec: PREC_TERM},
		TOK_MINUS:    {prefix: (*Parser).parseUnary, infix: (*Parser).parseBinary, prec: PREC_TERM},
		TOK_STAR:     {infix: (*Parser).parseBinary, prec: PREC_FACTOR},
		TOK_DIV:      {infix: (*Parser).parseBinary, prec: PREC_FACTOR},
		TOK_POW:      {infix: (*Parser).parseBinary, prec: PREC_POWER, rightAssoc: true},
		TOK_LPAREN:   {prefix: (*Parser).parseGrouping},
		TOK_INTLIT:   {prefix: (*Parser).parseIntLit},
		TOK_FLOATLIT: {prefix: (*Parser).parseFloatLit},
		TOK_IDENT:    {prefix: (*Parser).parseIdent},
		TOK_INT:      {prefix: (*Parser).parseTypeKeyword},
		TOK_FLOAT:    {prefix: (*Parser).parseTypeKeyword},
		TOK_AUTO:     {prefix: (*Parser).parseTypeKeyword},
	}
}

// -----------------------------------------------------------------------------

// expr := term ;
func (p *Parser) parseExpr() (ast.ASTExpr, bool) {
	return p.parsePrecedence(PREC_TERM)
}

// parsePrecedence parses an expression whose infix operators all bind at
// least as tightly as prec.
func (p *Parser) parsePrecedence(prec int) (ast.ASTExpr, bool) {
	if p.depth >= p.maxDepth {
		p.errorOn(report.NestingTooDeep, p.tok, "expression is nested too deeply")
		return nil, false
	}

	p.depth++
	defer func() { p.depth-- }()

	rule := parseRules[p.tok.Kind]
	if rule.prefix == nil {
		if p.has(TOK_EOF) {
			p.errorOn(report.UnexpectedEOF, p.tok, "unexpected end of file: expected an expression")
		} else {
			p.errorOn(report.MissingPrefixHandler, p.tok, "expected an expression but got %s", describeToken(p.tok))
		}

		return nil, false
	}

	lhs, ok := rule.prefix(p)
	if !ok {
		return nil, false
	}

	for {
		rule := parseRules[p.tok.Kind]
		if rule.infix == nil || rule.prec < prec {
			return lhs, true
		}

		if lhs, ok = rule.infix(p, lhs); !ok {
			return nil, false
		}
	}
}

// binary_op := expr ('+' | '-' | '*' | '/' | '**') expr ;
func (p *Parser) parseBinary(lhs ast.ASTExpr) (ast.ASTExpr, bool) {
	opTok := p.tok
	rule := parseRules[opTok.Kind]
	p.next()

	// right associative operators parse their right operand at their own
	// precedence so that further applications nest to the right
	rhsPrec := rule.prec + 1
	if rule.rightAssoc {
		rhsPrec = rule.prec
	}

	rhs, ok := p.parsePrecedence(rhsPrec)
	if !ok {
		return nil, false
	}

	return &ast.Binary{
		ASTBase: ast.NewASTBaseOver(lhs.Span(), rhs.Span()),
		Op:      &ast.Oper{Kind: binaryOps[opTok.Kind], Name: opTok.Value, Span: opTok.Span},
		Lhs:     lhs,
		Rhs:     rhs,
	}, true
}

// unary := ('+' | '-') unary | primary ;
func (p *Parser) parseUnary() (ast.ASTExpr, bool) {
	opTok := p.tok
	p.next()

	operand, ok := p.parsePrecedence(PREC_UNARY)
	if !ok {
		return nil, false
	}

	return &ast.Unary{
		ASTBase: ast.NewASTBaseOver(opTok.Span, operand.Span()),
		Op:      &ast.Oper{Kind: binaryOps[opTok.Kind], Name: opTok.Value, Span: opTok.Span},
		Operand: operand,
	}, true
}

// grouping := '(' expr ')' ;
func (p *Parser) parseGrouping() (ast.ASTExpr, bool) {
	lparen := p.tok
	p.next()

	inner, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if !p.has(TOK_RPAREN) {
		msg := "expected `)` but got " + describeToken(p.tok)
		p.submit(
			report.NewError(report.ExpectedCloseParen, p.tok.Span, "%s", msg).
				WithLabel(lparen.Span, "unclosed parenthesis"),
		)

		return nil, false
	}

	p.next()

	return &ast.Grouping{
		ASTBase: ast.NewASTBaseOver(lparen.Span, p.lookbehind.Span),
		Inner:   inner,
	}, true
}

// -----------------------------------------------------------------------------

// primary := INT_LIT | FLOAT_LIT | IDENT | 'int' | 'float' | 'auto' | grouping ;

func (p *Parser) parseIntLit() (ast.ASTExpr, bool) {
	tok := p.tok
	p.next()

	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.errorOn(report.InvalidLiteral, tok, "integer literal `%s` is out of range", tok.Value)
		return nil, false
	}

	return &ast.IntLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: n}, true
}

func (p *Parser) parseFloatLit() (ast.ASTExpr, bool) {
	tok := p.tok
	p.next()

	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		p.errorOn(report.InvalidLiteral, tok, "float literal `%s` is out of range", tok.Value)
		return nil, false
	}

	return &ast.FloatLit{ASTBase: ast.NewASTBaseOn(tok.Span), Value: f}, true
}

func (p *Parser) parseIdent() (ast.ASTExpr, bool) {
	tok := p.tok
	p.next()

	return &ast.Ident{ASTBase: ast.NewASTBaseOn(tok.Span), Name: tok.Value}, true
}

var typeKeywords = map[int]types.Type{
	TOK_INT:   types.Int,
	TOK_FLOAT: types.Float,
	TOK_AUTO:  types.Auto,
}

func (p *Parser) parseTypeKeyword() (ast.ASTExpr, bool) {
	tok := p.tok
	p.next()

	return &ast.TypeKeyword{ASTBase: ast.NewASTBaseOn(tok.Span), Type: typeKeywords[tok.Kind]}, true
}
