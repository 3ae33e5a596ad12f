package depm

import (
	"hastec/ast"
	"hastec/types"
	"testing"
)

func newDecl(name string, constant bool) *ast.Decl {
	return &ast.Decl{Name: name, Constant: constant}
}

func TestSymbolTableScopes(t *testing.T) {
	st := NewSymbolTable()

	global := NewSymbol(newDecl("x", true))
	st.Define("x", global)

	st.BeginScope()
	local := NewSymbol(newDecl("x", false))
	st.Define("x", local)

	if sym, ok := st.Find("x"); !ok || sym != local {
		t.Error("Find should return the innermost symbol")
	}

	if sym, ok := st.FindGlobal("x"); !ok || sym != global {
		t.Error("FindGlobal should return the global symbol")
	}

	if _, ok := st.FindLocal("y"); ok {
		t.Error("FindLocal found an undefined symbol")
	}

	st.BeginScope()
	if _, ok := st.FindLocal("x"); ok {
		t.Error("FindLocal should only search the innermost scope")
	}

	if sym, ok := st.Find("x"); !ok || sym != local {
		t.Error("Find should search enclosing scopes")
	}

	if !st.EndScope() || !st.EndScope() {
		t.Fatal("failed to pop local scopes")
	}

	if st.EndScope() {
		t.Error("the global scope must never be popped")
	}

	if st.Depth() != 1 {
		t.Errorf("depth = %d, want 1", st.Depth())
	}

	if sym, ok := st.Find("x"); !ok || sym != global {
		t.Error("local symbol survived its scope")
	}
}

func TestSymbolTableDefineDoesNotRejectDuplicates(t *testing.T) {
	st := NewSymbolTable()

	first := NewSymbol(newDecl("a", true))
	second := NewSymbol(newDecl("a", true))
	st.Define("a", first)
	st.Define("a", second)

	if sym, _ := st.Find("a"); sym != second {
		t.Error("redefinition should replace the symbol")
	}
}

func TestSymbolSetTyped(t *testing.T) {
	sym := NewSymbol(newDecl("a", true))
	if sym.IsTyped() || sym.Visited {
		t.Fatal("new symbols must be untyped")
	}

	sym.SetTyped(types.Int, types.IntValue(3))
	if !sym.IsTyped() || !sym.Visited || sym.Type != types.Int || !sym.Constant {
		t.Errorf("symbol = %+v", sym)
	}

	defer func() {
		if recover() == nil {
			t.Error("typing a symbol twice should raise an internal error")
		}
	}()

	sym.SetTyped(types.Float, types.FloatValue(1))
}

func TestDeclIndex(t *testing.T) {
	a1, b, a2 := newDecl("a", true), newDecl("b", false), newDecl("a", false)
	di := BuildDeclIndex(&ast.File{Decls: []*ast.Decl{a1, b, a2}})

	if decl, ok := di.Lookup("a"); !ok || decl != a1 {
		t.Error("the first declaration of a name must be primary")
	}

	if primary, ok := di.PrimaryOf(a2); !ok || primary != a1 {
		t.Error("a2 should be a duplicate of a1")
	}

	if _, ok := di.PrimaryOf(b); ok {
		t.Error("b is not a duplicate")
	}

	if primaries := di.Primaries(); len(primaries) != 2 || primaries[0] != a1 || primaries[1] != b {
		t.Errorf("primaries = %v", primaries)
	}

	if len(di.Decls()) != 3 {
		t.Errorf("index should keep all declarations")
	}
}
