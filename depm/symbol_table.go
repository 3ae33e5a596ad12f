package depm

// SymbolTable is a stack of scopes mapping names to symbols.  The first scope
// is the global scope: it is never popped.  Names are unique within a scope but
// may be shadowed by inner scopes.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable creates a new symbol table containing only the global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		scopes: []map[string]*Symbol{make(map[string]*Symbol)},
	}
}

// Define defines a symbol in the innermost scope.  The table does not check for
// redeclarations: callers decide what to do about duplicate names.
func (st *SymbolTable) Define(name string, sym *Symbol) {
	st.scopes[len(st.scopes)-1][name] = sym
}

// Find looks up a symbol by name starting at the innermost scope.
func (st *SymbolTable) Find(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// FindGlobal looks up a symbol in the global scope only.
func (st *SymbolTable) FindGlobal(name string) (*Symbol, bool) {
	sym, ok := st.scopes[0][name]
	return sym, ok
}

// FindLocal looks up a symbol in the innermost scope only.
func (st *SymbolTable) FindLocal(name string) (*Symbol, bool) {
	sym, ok := st.scopes[len(st.scopes)-1][name]
	return sym, ok
}

// BeginScope pushes a new, empty scope.
func (st *SymbolTable) BeginScope() {
	st.scopes = append(st.scopes, make(map[string]*Symbol))
}

// EndScope pops the innermost scope.  It returns false and does nothing if the
// innermost scope is the global scope.
func (st *SymbolTable) EndScope() bool {
	if len(st.scopes) == 1 {
		return false
	}

	st.scopes = st.scopes[:len(st.scopes)-1]
	return true
}

// Depth returns the number of scopes on the stack.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}
