package syntax

import "hastec/report"

// Lexer is responsible for tokenizing a source file.  Lexical errors are
// reported and skipped so that the lexer can always produce a complete token
// stream ending with an EOF token.
type Lexer struct {
	src string
	rep report.Reporter

	// The offset of the next byte to be read.
	pos int

	// The offset of the first byte of the token being lexed.
	start int

	isErr bool
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string, rep report.Reporter) *Lexer {
	return &Lexer{src: src, rep: rep}
}

// Tokenize lexes the whole source text.  The returned token slice always ends
// with an EOF token.  The boolean is false if any lexical error was reported.
func Tokenize(src string, rep report.Reporter) ([]*Token, bool) {
	l := NewLexer(src, rep)

	var toks []*Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, !l.isErr
		}
	}
}

// NextToken retrieves the next token from the input file. If the file has
// ended, this will be an EOF token.
func (l *Lexer) NextToken() *Token {
	for {
		c, ok := l.peek()
		if !ok {
			break
		}

		switch {
		case c == '\n' || c == '\t' || c == ' ' || c == '\r' || c == '\v' || c == '\f':
			l.skip()
		case c == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case isDecimalDigit(c):
			return l.lexNumericLit()
		case isFirstIdentChar(c):
			return l.lexIdentOrKeyword()
		default:
			if tok := l.lexPunctOrOper(); tok != nil {
				return tok
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF)
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,
	"*":  TOK_STAR,
	"/":  TOK_DIV,
	"**": TOK_POW,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	":": TOK_COLON,
	"=": TOK_ASSIGN,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Unknown characters
// are reported and nil is returned.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.src[l.start:l.pos]]
	if !ok {
		l.rejectChar()
		return nil
	}

	for l.pos < len(l.src) {
		if longer, ok := symbolPatterns[l.src[l.start:l.pos+1]]; ok {
			l.eat()
			kind = longer
		} else {
			break
		}
	}

	return l.makeToken(kind)
}

// rejectChar reports the character just eaten as invalid.  The whole UTF-8
// sequence is consumed so multibyte characters are reported once.
func (l *Lexer) rejectChar() {
	for l.pos < len(l.src) && l.src[l.pos]&0xC0 == 0x80 {
		l.eat()
	}

	span := l.getSpan()
	l.isErr = true
	l.rep.Report(
		report.NewError(report.InvalidCharacter, span, "invalid character: '%s'", l.src[l.start:l.pos]).
			WithLabel(span, "remove this"),
	)
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"var":   TOK_VAR,
	"const": TOK_CONST,

	"int":   TOK_INT,
	"float": TOK_FLOAT,
	"auto":  TOK_AUTO,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for {
		c, ok := l.peek()
		if !ok || !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	kind := TOK_IDENT
	if kwKind, ok := keywordPatterns[l.src[l.start:l.pos]]; ok {
		kind = kwKind
	}

	return l.makeToken(kind)
}

// lexNumericLit lexes an integer literal or a float literal.  Float literals
// must have digits on both sides of the decimal point.
func (l *Lexer) lexNumericLit() *Token {
	l.mark()
	l.eatDigits()

	if c, ok := l.peek(); ok && c == '.' && isDecimalDigit(l.peekAt(1)) {
		l.eat()
		l.eatDigits()
		return l.makeToken(TOK_FLOATLIT)
	}

	return l.makeToken(TOK_INTLIT)
}

func (l *Lexer) eatDigits() {
	for {
		c, ok := l.peek()
		if !ok || !isDecimalDigit(c) {
			return
		}

		l.eat()
	}
}

// skipLineComment skips a `//` comment up to but not including the line break.
func (l *Lexer) skipLineComment() {
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return
		}

		l.skip()
	}
}

// -----------------------------------------------------------------------------

// mark marks the beginning of a token.
func (l *Lexer) mark() {
	l.start = l.pos
}

// eat moves the lexer forward one byte and includes it in the current token.
func (l *Lexer) eat() {
	l.pos++
}

// skip moves the lexer forward one byte without including it in a token.
func (l *Lexer) skip() {
	l.pos++
	l.start = l.pos
}

// peek returns the byte the lexer is positioned on.
func (l *Lexer) peek() (byte, bool) {
	if l.pos < len(l.src) {
		return l.src[l.pos], true
	}

	return 0, false
}

// peekAt returns the byte n bytes ahead of the lexer or 0 at the end of input.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n < len(l.src) {
		return l.src[l.pos+n]
	}

	return 0
}

// makeToken creates a new token of the given kind from the current token text.
func (l *Lexer) makeToken(kind int) *Token {
	return &Token{Kind: kind, Value: l.src[l.start:l.pos], Span: l.getSpan()}
}

// getSpan returns the span of the current token.
func (l *Lexer) getSpan() report.Span {
	return report.NewSpan(l.start, l.pos)
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '$'
}
