package syntax

import (
	"hastec/ast"
	"hastec/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// DefaultMaxDepth is the default maximum expression nesting depth.
const DefaultMaxDepth = 256

// Parser is the parser for a Haste source file.  The parser moves over a
// token slice (which must end with an EOF token) and reports any syntax errors
// it encounters.  All parsing functions assume that they begin with the parser
// positioned on the first token of their production and must consume all
// tokens (including the last) of their production, leaving the parser on the
// next token.  Parsing functions return false if they fail: the error has
// always been reported by the time they return.
type Parser struct {
	// The reporter syntax errors are submitted to.
	rep report.Reporter

	// The tokens being parsed.  The last token is always an EOF token.
	toks []*Token

	// The index of the current token.
	pos int

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token immediately before the current token.
	lookbehind *Token

	// The current and maximum nesting depth of expressions.
	depth, maxDepth int

	// Whether or not any errors were reported.
	isErr bool
}

// NewParser creates a new parser over the given tokens starting at the first
// token.  If the tokens do not end with an EOF token, one is added.
func NewParser(toks []*Token, rep report.Reporter) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != TOK_EOF {
		eofSpan := report.NewSpan(0, 0)
		if len(toks) > 0 {
			end := toks[len(toks)-1].Span.End
			eofSpan = report.NewSpan(end, end)
		}

		toks = append(toks[:len(toks):len(toks)], &Token{Kind: TOK_EOF, Span: eofSpan})
	}

	return &Parser{
		rep:      rep,
		toks:     toks,
		tok:      toks[0],
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth sets the maximum nesting depth of expressions.
func (p *Parser) SetMaxDepth(depth int) {
	p.maxDepth = depth
}

// Pos returns the index of the token the parser is positioned on.
func (p *Parser) Pos() int {
	return p.pos
}

// Parse tokenizes and parses a whole source file.  The returned file contains
// every declaration that parsed successfully.  The boolean is false if any
// lexical or syntax error was reported.
func Parse(src string, rep report.Reporter) (*ast.File, bool) {
	toks, lexOk := Tokenize(src, rep)
	file, parseOk := NewParser(toks, rep).ParseFile()
	return file, lexOk && parseOk
}

// ParseExprAt parses a single expression beginning at the token at index pos.
// It returns the expression and the index of the first token after it.
func ParseExprAt(toks []*Token, pos int, rep report.Reporter) (ast.ASTExpr, int, bool) {
	p := NewParser(toks, rep)
	p.seek(min(max(pos, 0), len(p.toks)-1))

	expr, ok := p.parseExpr()
	return expr, p.pos, ok
}

// ParseFile parses declarations until the end of the token stream.  If a
// declaration fails to parse, the parser synchronizes to the next declaration
// boundary and continues so that later declarations are still parsed.
func (p *Parser) ParseFile() (*ast.File, bool) {
	file := &ast.File{}

	for !p.has(TOK_EOF) {
		if decl, ok := p.parseDecl(); ok {
			file.Decls = append(file.Decls, decl)
		} else {
			p.synchronize()
		}
	}

	return file, !p.isErr
}

// synchronize discards tokens until a `;` has been consumed or the parser is
// positioned on a `const` or `var` keyword.
func (p *Parser) synchronize() {
	for !p.has(TOK_EOF) {
		switch p.tok.Kind {
		case TOK_SEMI:
			p.next()
			return
		case TOK_CONST, TOK_VAR:
			return
		}

		p.next()
	}
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  The parser never moves past the
// EOF token.
func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.seek(p.pos + 1)
	}
}

// seek positions the parser on the token at index pos.
func (p *Parser) seek(pos int) {
	p.pos = pos
	p.tok = p.toks[pos]

	if pos > 0 {
		p.lookbehind = p.toks[pos-1]
	} else {
		p.lookbehind = nil
	}
}

// has returns true if the parser is on a token of a given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of the given kind and moves the
// parser forward.  It returns the matched token.  If the parser is not on a
// token of the given kind, the current token is rejected.
func (p *Parser) want(kind int) (*Token, bool) {
	if p.has(kind) {
		tok := p.tok
		p.next()
		return tok, true
	}

	p.rejectExpected("`" + TokenName(kind) + "`")
	return nil, false
}

// -----------------------------------------------------------------------------

// rejectExpected reports an unexpected token error on the current token naming
// what the parser expected to find.
func (p *Parser) rejectExpected(what string) {
	if p.has(TOK_EOF) {
		p.errorOn(report.UnexpectedEOF, p.tok, "unexpected end of file: expected %s", what)
	} else {
		p.errorOn(report.UnexpectedToken, p.tok, "expected %s but got %s", what, describeToken(p.tok))
	}
}

// errorOn reports an error on the given token.
func (p *Parser) errorOn(code report.Code, tok *Token, msg string, args ...interface{}) {
	p.submit(report.NewError(code, tok.Span, msg, args...))
}

// submit reports a fully constructed error diagnostic.
func (p *Parser) submit(diag *report.Diagnostic) {
	p.isErr = true
	p.rep.Report(diag)
}

// describeToken returns a description of a token for use in error messages.
func describeToken(tok *Token) string {
	switch tok.Kind {
	case TOK_IDENT, TOK_INTLIT, TOK_FLOATLIT:
		return TokenName(tok.Kind) + " `" + tok.Value + "`"
	case TOK_EOF:
		return "end of file"
	default:
		return "`" + tok.Value + "`"
	}
}
