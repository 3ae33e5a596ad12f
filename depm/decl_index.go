package depm

import "hastec/ast"

// DeclIndex is the index of all top level declarations in a file, built once
// by hoisting.  The first declaration of each name is its primary declaration.
// Any later declarations of the same name are duplicates.  The index is never
// modified after it is built.
type DeclIndex struct {
	decls      []*ast.Decl
	primaries  map[string]*ast.Decl
	duplicates map[*ast.Decl]*ast.Decl
}

// BuildDeclIndex hoists the declarations of a file into a new index.
func BuildDeclIndex(file *ast.File) *DeclIndex {
	di := &DeclIndex{
		decls:      file.Decls,
		primaries:  make(map[string]*ast.Decl),
		duplicates: make(map[*ast.Decl]*ast.Decl),
	}

	for _, decl := range file.Decls {
		if primary, ok := di.primaries[decl.Name]; ok {
			di.duplicates[decl] = primary
		} else {
			di.primaries[decl.Name] = decl
		}
	}

	return di
}

// Decls returns all the declarations in source order.
func (di *DeclIndex) Decls() []*ast.Decl {
	return di.decls
}

// Lookup returns the primary declaration of a name.
func (di *DeclIndex) Lookup(name string) (*ast.Decl, bool) {
	decl, ok := di.primaries[name]
	return decl, ok
}

// PrimaryOf returns the primary declaration a duplicate declaration conflicts
// with.  It returns false if decl is itself a primary declaration.
func (di *DeclIndex) PrimaryOf(decl *ast.Decl) (*ast.Decl, bool) {
	primary, ok := di.duplicates[decl]
	return primary, ok
}

// Primaries returns the primary declarations in source order.
func (di *DeclIndex) Primaries() []*ast.Decl {
	primaries := make([]*ast.Decl, 0, len(di.primaries))
	for _, decl := range di.decls {
		if _, isDup := di.duplicates[decl]; !isDup {
			primaries = append(primaries, decl)
		}
	}

	return primaries
}
