package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// checkElementTypeDecl implements §4.6.4: gather fields, skipping ones whose
// type failed to lower, ensure the element name is new, then register.
func (c *Checker) checkElementTypeDecl(d hir.ElementTypeDecl) {
	fields := make([]ir.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		typ, ok := c.lowerType(f.Type)
		if !ok {
			continue
		}
		fields = append(fields, ir.Field{Name: f.Name, Type: typ})
	}

	el := &ir.Element{Name: d.Name, Fields: fields}
	if !c.ctx.AddElementType(d.Name, el) {
		c.report(d.Span(), "multiple definitions of element type '%s'", d.Name)
	}
}

// checkExternDecl implements §4.6.4: the declared variable's name must be
// new at global scope, then it is registered read-write.
func (c *Checker) checkExternDecl(d hir.ExternDecl) {
	if c.ctx.Symbols.HasSymbol(d.Ident.Name, true) {
		c.report(d.Span(), "multiple definitions of variable '%s'", d.Ident.Name)
		return
	}
	typ, ok := c.lowerType(d.Ident.Type)
	if !ok {
		c.ctx.Symbols.Define(d.Ident.Name, ir.Undefined, ReadWrite)
		return
	}
	c.ctx.Symbols.Define(d.Ident.Name, typ, ReadWrite)
}

// checkFuncDecl implements §4.6.4: enter a new scope, register arguments
// (inout ? ReadWrite : Read) and results (Write), check the body, exit the
// scope, then register the function name globally if it is new.
func (c *Checker) checkFuncDecl(d hir.FuncDecl) {
	c.ctx.Symbols.Scope()
	defer c.ctx.Symbols.Unscope()

	argTypes := make([]ir.Type, 0, len(d.Args))
	for _, a := range d.Args {
		typ, ok := c.lowerType(a.Type)
		if !ok {
			typ = ir.Undefined
		}
		access := Read
		if a.Inout {
			access = ReadWrite
		}
		c.ctx.Symbols.Define(a.Name, typ, access)
		argTypes = append(argTypes, typ)
	}

	resultTypes := make([]ir.Type, 0, len(d.Results))
	for _, r := range d.Results {
		typ, ok := c.lowerType(r.Type)
		if !ok {
			typ = ir.Undefined
		}
		c.ctx.Symbols.Define(r.Name, typ, Write)
		resultTypes = append(resultTypes, typ)
	}

	c.checkBlock(d.Body)

	if !c.ctx.AddFunction(d.Name, &FuncSig{Name: d.Name, Args: argTypes, Results: resultTypes}) {
		c.report(d.Span(), "multiple definitions of function '%s'", d.Name)
	}
}
