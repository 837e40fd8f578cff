package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// inferExpr infers the single-value type of e in a read context. Most
// expressions only ever produce one value; CallExpr and MapExpr can
// produce several (a function with multiple results) and must be inferred
// with inferExprMulti instead — inferExpr reports an error if one of those
// is used where a single value is required.
func (c *Checker) inferExpr(e hir.Expr) (ir.Type, bool) {
	return c.inferExprRW(e, false)
}

// inferExprMulti infers the full value list produced by e, which may be
// more than one value for CallExpr/MapExpr.
func (c *Checker) inferExprMulti(e hir.Expr) ([]ir.Type, bool) {
	switch n := e.(type) {
	case hir.CallExpr:
		ts, ok := c.inferCall(n)
		if ok {
			c.setTypes(e, ts)
		}
		return ts, ok
	case hir.MapExpr:
		ts, ok := c.inferMap(n)
		if ok {
			c.setTypes(e, ts)
		}
		return ts, ok
	default:
		t, ok := c.inferExprRW(e, false)
		if !ok {
			return nil, false
		}
		return []ir.Type{t}, true
	}
}

// inferLHS infers a single assignment target in a write context: VarExpr
// with no existing binding is permitted and TensorReadExpr/FieldReadExpr
// propagate the write mark to their base (spec.md §4.6.3).
func (c *Checker) inferLHS(e hir.Expr) (ir.Type, bool) {
	return c.inferExprRW(e, true)
}

// inferExprRW is the shared single-value inference core. write is only
// meaningful for VarExpr, TensorReadExpr, and FieldReadExpr; every other
// node kind ignores it since it can never appear as an assignment target.
func (c *Checker) inferExprRW(e hir.Expr, write bool) (ir.Type, bool) {
	var t ir.Type
	var ok bool

	switch n := e.(type) {
	case hir.IntLit:
		t, ok = ir.Int, true
	case hir.FloatLit:
		t, ok = ir.Float, true
	case hir.BoolLit:
		t, ok = ir.Bool, true
	case hir.DenseLit:
		t, ok = c.inferDenseLit(n)
	case hir.VarExpr:
		t, ok = c.inferVar(n, write)
	case hir.NotExpr:
		t, ok = c.inferNot(n)
	case hir.NegExpr:
		t, ok = c.inferNeg(n)
	case hir.TransposeExpr:
		t, ok = c.inferTranspose(n)
	case hir.BinaryExpr:
		t, ok = c.inferBinary(n)
	case hir.TensorReadExpr:
		t, ok = c.inferTensorRead(n, write)
	case hir.TupleReadExpr:
		t, ok = c.inferTupleRead(n)
	case hir.FieldReadExpr:
		t, ok = c.inferFieldRead(n, write)
	case hir.CallExpr:
		results, callOK := c.inferCall(n)
		if !callOK || len(results) != 1 {
			if callOK {
				c.report(n.Span(), "call to '%s' does not produce a single value here", n.Func)
			}
			return nil, false
		}
		t, ok = results[0], true
	case hir.MapExpr:
		results, mapOK := c.inferMap(n)
		if !mapOK || len(results) != 1 {
			if mapOK {
				c.report(n.Span(), "map expression does not produce a single value here")
			}
			return nil, false
		}
		t, ok = results[0], true
	default:
		c.report(e.Span(), "internal: unrecognized expression")
		return nil, false
	}

	if !ok {
		return nil, false
	}
	c.setTypes(e, []ir.Type{t})
	return t, true
}

// inferVar implements variable reference checking (§4.6.2): a read
// reference must already be declared and must be readable; a write
// reference that finds no existing binding introduces a new local
// (spec.md §4.6.3, AssignStmt).
func (c *Checker) inferVar(n hir.VarExpr, write bool) (ir.Type, bool) {
	sym, found := c.ctx.Symbols.Lookup(n.Name)
	if !found {
		if write {
			// New local introduced by assignment; the caller (AssignStmt)
			// defines it once the RHS type is known, so just signal
			// "no prior binding" via Undefined here and let the assign
			// path perform the Define.
			return ir.Undefined, true
		}
		c.report(n.Span(), "undeclared variable '%s'", n.Name)
		return nil, false
	}
	if write && !sym.Access.Writable() {
		c.report(n.Span(), "cannot assign to read-only variable '%s'", n.Name)
		return nil, false
	}
	if !write && !sym.Access.Readable() {
		c.report(n.Span(), "variable '%s' is not readable here", n.Name)
		return nil, false
	}
	return sym.Type, true
}

func (c *Checker) inferNot(n hir.NotExpr) (ir.Type, bool) {
	operand, ok := c.inferExpr(n.Operand)
	if !ok || !ir.Defined(operand) {
		return nil, false
	}
	if !ir.Equals(operand, ir.Bool) {
		c.report(n.Span(), "operand of 'not' must be bool")
		return nil, false
	}
	return ir.Bool, true
}

// inferNeg implements unary negation (§4.6.2): operand must be a numeric
// tensor, result is the same type.
func (c *Checker) inferNeg(n hir.NegExpr) (ir.Type, bool) {
	operand, ok := c.inferExpr(n.Operand)
	if !ok || !ir.Defined(operand) {
		return nil, false
	}
	if _, tensorOK := numericComponentKind(operand); !tensorOK {
		c.report(n.Span(), "operand of unary '-' must be a numeric tensor")
		return nil, false
	}
	return operand, true
}

// inferTranspose implements §4.6.2: order 0 unchanged; order 1 dims
// preserved with the column-vector flag toggled; order 2 dims swapped with
// the flag cleared.
func (c *Checker) inferTranspose(n hir.TransposeExpr) (ir.Type, bool) {
	operand, ok := c.inferExpr(n.Operand)
	if !ok || !ir.Defined(operand) {
		return nil, false
	}
	t, isTensor := asTensor(operand)
	if !isTensor {
		c.report(n.Span(), "operand of transpose must be a tensor")
		return nil, false
	}
	switch t.Order() {
	case 0:
		return t, true
	case 1:
		return &ir.Tensor{Component: t.Component, Domains: t.Domains, ColumnVector: !t.ColumnVector}, true
	case 2:
		return &ir.Tensor{
			Component: t.Component,
			Domains:   []ir.IndexDomain{t.Domains[1], t.Domains[0]},
		}, true
	default:
		c.report(n.Span(), "cannot transpose a tensor of order 3 or greater")
		return nil, false
	}
}

// numericComponentKind returns the scalar component kind of a scalar or
// tensor type and whether it is numeric (int/float, not bool).
func numericComponentKind(t ir.Type) (ir.Kind, bool) {
	switch v := t.(type) {
	case *ir.Scalar:
		return v.Kind(), ir.IsNumericScalarKind(v.Kind())
	case *ir.Tensor:
		return v.Component, ir.IsNumericScalarKind(v.Component)
	default:
		return ir.KindUndefined, false
	}
}

// asTensor normalizes a scalar or tensor type to its *ir.Tensor form (an
// order-0 tensor for a bare scalar), so shape rules can be written against
// a single representation.
func asTensor(t ir.Type) (*ir.Tensor, bool) {
	switch v := t.(type) {
	case *ir.Tensor:
		return v, true
	case *ir.Scalar:
		return &ir.Tensor{Component: v.Kind()}, true
	default:
		return nil, false
	}
}
