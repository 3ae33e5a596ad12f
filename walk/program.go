package walk

import (
	"hastec/ast"
	"hastec/types"
)

// Program is the result of analyzing a file.
type Program struct {
	// The successfully analyzed declarations in source order.
	Globals []*Global

	// The type of every analyzed value expression.
	Types map[ast.ASTExpr]types.Type
}

// Global is an analyzed top level declaration.
type Global struct {
	Name     string
	Constant bool
	Type     types.Type

	// The value of the declaration's initializer or the zero value of its type
	// if it has none.
	Value types.Value

	Decl *ast.Decl
}

// Lookup returns the global with the given name.
func (p *Program) Lookup(name string) (*Global, bool) {
	for _, g := range p.Globals {
		if g.Name == name {
			return g, true
		}
	}

	return nil, false
}
