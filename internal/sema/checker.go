// Package sema lowers a parsed HIR tree (internal/hir) into the typed IR
// (internal/ir), resolving names, inferring and checking the structural
// type system, validating map-reduce assembly, and recovering from errors
// so that one pass surfaces every independent diagnostic instead of
// aborting at the first fault (spec.md §1).
package sema

import (
	"github.com/cwbudde/tensorc/internal/diag"
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// Checker walks one HIR tree exactly once, publishing diagnostics to sink
// and accumulating declarations into ctx. A Checker is single-use: construct
// one per Program via NewChecker, call Check once (spec.md §5: single
// synchronous pass, no shared state beyond the context).
type Checker struct {
	ctx  *Context
	sink diag.Sink

	// exprTypes is the side-map exposed to downstream passes: per HIR
	// expression node, the IR type list inferred for it (spec.md §6,
	// "a parallel IR annotation ... materialized as a side-map"). Keyed by
	// the node's builder-assigned ID rather than the node value itself,
	// since several node types embed slices and so are not comparable. A
	// node with no entry failed to type and propagated Undefined.
	exprTypes map[int][]ir.Type
}

// NewChecker constructs a Checker reporting into sink and accumulating
// declarations into ctx.
func NewChecker(ctx *Context, sink diag.Sink) *Checker {
	return &Checker{
		ctx:       ctx,
		sink:      sink,
		exprTypes: make(map[int][]ir.Type),
	}
}

// Check runs the full pass over prog: registers every element and function
// declaration, then checks every procedure body. It returns the populated
// Context; diagnostics are available from the sink supplied to NewChecker.
func (c *Checker) Check(prog *hir.Program) *Context {
	for _, el := range prog.Elements {
		c.checkElementTypeDecl(el)
	}
	for _, ext := range prog.Externs {
		c.checkExternDecl(ext)
	}
	for _, fn := range prog.Functions {
		c.checkFuncDecl(fn)
	}
	for _, proc := range prog.Procs {
		c.checkProcDecl(proc)
	}
	return c.ctx
}

func (c *Checker) checkProcDecl(p hir.ProcDecl) {
	c.ctx.Symbols.Scope()
	defer c.ctx.Symbols.Unscope()
	c.checkBlock(p.Body)
}

func (c *Checker) checkBlock(stmts []hir.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

// report is a thin convenience wrapper so call sites read like the
// teacher's analyzer: c.report(span, "format", args...).
func (c *Checker) report(span diag.Span, format string, args ...any) {
	c.sink.Report(span, format, args...)
}

// setTypes records the inferred type list for an expression node in the
// side-map exposed to downstream passes.
func (c *Checker) setTypes(e hir.Expr, types []ir.Type) {
	c.exprTypes[e.ID()] = types
}

// ExprTypes returns the per-expression IR type annotation side-map
// accumulated over the pass (spec.md §6), keyed by node ID.
func (c *Checker) ExprTypes() map[int][]ir.Type {
	return c.exprTypes
}

// Context returns the program context this Checker is populating.
func (c *Checker) Context() *Context {
	return c.ctx
}
