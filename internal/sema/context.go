package sema

import "github.com/cwbudde/tensorc/internal/ir"

// FuncSig is a registered function's signature: its name plus the types of
// its declared arguments and results, in order, for arity/type checks at
// call and map-reduce sites (spec.md §6: "map of function name → function
// signature (name, arguments, results)").
type FuncSig struct {
	Name    string
	Args    []ir.Type
	Results []ir.Type
}

// Context is the program-wide state threaded through one checking pass: the
// two global, append-only registries (element kinds and function
// signatures) plus the current symbol scope stack (spec.md §4.4). Element
// kinds and functions are immutable once registered; redefinition is a
// diagnostic, not an overwrite.
type Context struct {
	Elements  map[string]*ir.Element
	Functions map[string]*FuncSig
	Symbols   *SymbolTable
}

// NewContext returns an empty context with one open (global) scope.
func NewContext() *Context {
	return &Context{
		Elements:  make(map[string]*ir.Element),
		Functions: make(map[string]*FuncSig),
		Symbols:   NewSymbolTable(),
	}
}

func (c *Context) ContainsElementType(name string) bool {
	_, ok := c.Elements[name]
	return ok
}

func (c *Context) ContainsFunction(name string) bool {
	_, ok := c.Functions[name]
	return ok
}

// AddElementType registers name, reporting false if it is already taken so
// the caller can raise "multiple definitions of element type 'name'".
func (c *Context) AddElementType(name string, el *ir.Element) bool {
	if c.ContainsElementType(name) {
		return false
	}
	c.Elements[name] = el
	return true
}

// AddFunction registers name, reporting false if it is already taken.
func (c *Context) AddFunction(name string, sig *FuncSig) bool {
	if c.ContainsFunction(name) {
		return false
	}
	c.Functions[name] = sig
	return true
}
