package sema

import "github.com/cwbudde/tensorc/internal/ir"

// Access records the read/write permissions a symbol binding carries
// (spec.md §3: "Symbol table entry"). Function arguments are Read; results,
// Write; inout arguments and plain locals, ReadWrite.
type Access int

const (
	Read Access = 1 << iota
	Write
)

const ReadWrite = Read | Write

func (a Access) Readable() bool { return a&Read != 0 }
func (a Access) Writable() bool { return a&Write != 0 }

// Symbol is one binding in a SymbolTable scope.
type Symbol struct {
	Name   string
	Type   ir.Type
	Access Access
}

// SymbolTable is a stack of scopes, innermost last. Unlike the DSL's global
// element/function registries (see Context), symbol tables are strictly
// scoped: entering a block pushes a scope, leaving it pops exactly that
// scope (spec.md §5's strict-nesting resource rule).
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable returns a table with a single, empty global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]*Symbol{{}}}
}

// Scope pushes a new, empty lexical scope.
func (st *SymbolTable) Scope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

// Unscope pops the innermost scope. Calling Unscope on the last remaining
// (global) scope is a programming error and panics: every Scope call in the
// checker is paired with exactly one Unscope, including on error paths, and
// an imbalance here indicates that pairing was violated.
func (st *SymbolTable) Unscope() {
	if len(st.scopes) <= 1 {
		panic("sema: Unscope called with no enclosing scope to return to")
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Depth reports the current scope nesting depth; 1 means only the global
// scope is open (spec.md §8 invariant 6).
func (st *SymbolTable) Depth() int { return len(st.scopes) }

// Define binds name in the innermost scope, shadowing any outer binding of
// the same name.
func (st *SymbolTable) Define(name string, typ ir.Type, access Access) {
	st.scopes[len(st.scopes)-1][name] = &Symbol{Name: name, Type: typ, Access: access}
}

// Lookup walks the scope stack innermost-outward and returns the first
// match.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Globals returns the outermost (global) scope's bindings, for tooling that
// wants a post-check summary of declared externs and top-level assignment-
// introduced variables.
func (st *SymbolTable) Globals() map[string]*Symbol {
	return st.scopes[0]
}

// HasSymbol reports whether name is bound, optionally restricted to the
// innermost scope only. localOnly is how the checker distinguishes
// re-declaration (same scope, a diagnostic) from shadowing (outer scope,
// permitted).
func (st *SymbolTable) HasSymbol(name string, localOnly bool) bool {
	if localOnly {
		_, ok := st.scopes[len(st.scopes)-1][name]
		return ok
	}
	_, ok := st.Lookup(name)
	return ok
}
