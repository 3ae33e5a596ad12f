package depm

import "hastec/report"

/*
Declaration Resolution
----------------------

Declarations are resolved lazily using a variant of the Three-Color DFS
algorithm.  Every symbol has one of the following colors:

1. White: the symbol's declaration has not been analyzed.
2. Grey: the symbol's declaration is being analyzed.
3. Black: the symbol's declaration was analyzed successfully.
4. Failed: analysis of the symbol's declaration failed.

Symbols start out white.  When the analyzer begins analyzing a declaration, it
colors the symbol grey and pushes it onto the resolution stack.  Any reference
to a white symbol causes the referenced declaration to be analyzed immediately.
A reference to a grey symbol means the declarations on the resolution stack from
that symbol upward form a cycle.  Once analysis of a declaration finishes, its
symbol is popped and colored black or failed.  Black and failed symbols are
never analyzed again.
*/

// Color is the resolution state of a symbol.
type Color int

// Enumeration of resolution colors.
const (
	ColorWhite Color = iota
	ColorGrey
	ColorBlack
	ColorFailed
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorGrey:
		return "grey"
	case ColorBlack:
		return "black"
	default:
		return "failed"
	}
}

// Resolution tracks the resolution state of every symbol in a file.
type Resolution struct {
	colors map[*Symbol]Color

	// The stack of symbols currently being analyzed.
	stack []*Symbol
}

// NewResolution creates a new resolution state in which every symbol is white.
func NewResolution() *Resolution {
	return &Resolution{colors: make(map[*Symbol]Color)}
}

// Color returns the resolution color of a symbol.
func (r *Resolution) Color(sym *Symbol) Color {
	return r.colors[sym]
}

// Begin marks the start of the analysis of a white symbol.
func (r *Resolution) Begin(sym *Symbol) {
	if c := r.colors[sym]; c != ColorWhite {
		report.ReportICE("began resolving %s symbol `%s`", c, sym.Name)
	}

	r.colors[sym] = ColorGrey
	r.stack = append(r.stack, sym)
}

// Finish marks the end of the analysis of the symbol on top of the resolution
// stack.  The symbol is colored black if its analysis succeeded and failed
// otherwise.
func (r *Resolution) Finish(sym *Symbol, ok bool) {
	if len(r.stack) == 0 || r.stack[len(r.stack)-1] != sym {
		report.ReportICE("finished resolving `%s` out of order", sym.Name)
	}

	r.stack = r.stack[:len(r.stack)-1]

	if ok {
		r.colors[sym] = ColorBlack
	} else {
		r.colors[sym] = ColorFailed
	}
}

// Cycle returns the symbols from a grey symbol to the top of the resolution
// stack.  These are the declarations that depend on each other.
func (r *Resolution) Cycle(sym *Symbol) []*Symbol {
	for i, s := range r.stack {
		if s == sym {
			return append([]*Symbol(nil), r.stack[i:]...)
		}
	}

	return nil
}

// Depth returns the number of declarations currently being analyzed.
func (r *Resolution) Depth() int {
	return len(r.stack)
}

// Done returns whether every given symbol is black or failed.
func (r *Resolution) Done(syms []*Symbol) bool {
	for _, sym := range syms {
		if c := r.colors[sym]; c != ColorBlack && c != ColorFailed {
			return false
		}
	}

	return true
}
