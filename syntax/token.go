package syntax

import "hastec/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The source text of the token.
	Value string

	// The text span over which the token exists.
	Span report.Span
}

// Enumeration of token kinds.
const (
	TOK_VAR = iota
	TOK_CONST

	TOK_INT
	TOK_FLOAT
	TOK_AUTO

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_POW

	TOK_LPAREN
	TOK_RPAREN
	TOK_COLON
	TOK_ASSIGN
	TOK_SEMI

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT

	TOK_EOF
)

// tokenNames gives a display name for every token kind.
var tokenNames = map[int]string{
	TOK_VAR:      "var",
	TOK_CONST:    "const",
	TOK_INT:      "int",
	TOK_FLOAT:    "float",
	TOK_AUTO:     "auto",
	TOK_PLUS:     "+",
	TOK_MINUS:    "-",
	TOK_STAR:     "*",
	TOK_DIV:      "/",
	TOK_POW:      "**",
	TOK_LPAREN:   "(",
	TOK_RPAREN:   ")",
	TOK_COLON:    ":",
	TOK_ASSIGN:   "=",
	TOK_SEMI:     ";",
	TOK_IDENT:    "identifier",
	TOK_INTLIT:   "integer literal",
	TOK_FLOATLIT: "float literal",
	TOK_EOF:      "end of file",
}

// TokenName returns the display name of a token kind.
func TokenName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "<unknown>"
}
