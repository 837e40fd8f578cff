package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// inferTensorRead implements §4.6.2's tensor-read rule: the operand must be
// a single tensor, arity must equal its outer dimension count, each index
// is a slice or an expression (integer, or the named set's element type
// when the axis is a named set), and each sliced axis survives into the
// result with its full domain (outer index set plus nested block
// structure). If exactly one axis survives and the last index supplied was
// non-slice, the result is a column vector; if no axes survive, the result
// is the tensor's block type (its bare component kind when unblocked).
func (c *Checker) inferTensorRead(n hir.TensorReadExpr, write bool) (ir.Type, bool) {
	base, ok := c.inferExprRW(n.Tensor, write)
	if !ok || !ir.Defined(base) {
		return nil, false
	}
	t, isTensor := asTensor(base)
	if !isTensor {
		c.report(n.Span(), "tensor read operand must be a single tensor")
		return nil, false
	}
	if len(n.Indices) != t.Order() {
		c.report(n.Span(), "tensor read arity %d does not match tensor order %d", len(n.Indices), t.Order())
		return nil, false
	}

	surviving := make([]ir.IndexDomain, 0, len(n.Indices))
	allOK := true
	lastSlice := false
	for i, idx := range n.Indices {
		if idx.Slice {
			surviving = append(surviving, t.Domains[i])
			lastSlice = true
			continue
		}
		lastSlice = false
		idxType, idxOK := c.inferExpr(idx.Expr)
		if !idxOK || !ir.Defined(idxType) {
			allOK = false
			continue
		}
		if ir.Equals(idxType, ir.Int) {
			continue
		}
		if named, isNamed := namedSetElement(t.Domains[i].Outer()); isNamed && ir.Equals(idxType, named) {
			continue
		}
		c.report(idx.Expr.Span(), "tensor index must be an integer or an element of the axis's named set")
		allOK = false
	}
	if !allOK {
		return nil, false
	}

	if len(surviving) == 0 {
		// Each axis's nested domain is the block's own axis (the inverse of
		// ir.NewBlockTensor); an unblocked tensor leaves the component.
		block := &ir.Tensor{Component: t.Component}
		for _, d := range t.Domains {
			if len(d.Inner()) == 0 {
				block.Domains = nil
				break
			}
			block.Domains = append(block.Domains, d.Inner())
		}
		if block.Order() == 1 {
			block.ColumnVector = t.ColumnVector
		}
		return block, true
	}
	result := &ir.Tensor{Component: t.Component, Domains: surviving}
	if len(surviving) == 1 && !lastSlice {
		result.ColumnVector = true
	}
	return result, true
}

// namedSetElement returns the element type of a named-set index set, if it
// is one. It only ever looks at an axis's outer index set — the nested
// block structure of a domain is never matched against a read index.
func namedSetElement(s ir.IndexSet) (*ir.Element, bool) {
	if s.Variant != ir.IndexSetNamed || s.Set == nil {
		return nil, false
	}
	return s.Set.Element, true
}

// inferTupleRead implements §4.6.2: a single integer index; result is the
// tuple's element type.
func (c *Checker) inferTupleRead(n hir.TupleReadExpr) (ir.Type, bool) {
	base, ok := c.inferExpr(n.Tuple)
	if !ok || !ir.Defined(base) {
		return nil, false
	}
	tup, isTuple := base.(*ir.Tuple)
	if !isTuple {
		c.report(n.Span(), "tuple read operand must be a tuple")
		return nil, false
	}
	idxType, idxOK := c.inferExpr(n.Index)
	if !idxOK || !ir.Defined(idxType) {
		return nil, false
	}
	if !ir.Equals(idxType, ir.Int) {
		c.report(n.Index.Span(), "tuple read index must be an integer")
		return nil, false
	}
	return tup.Element, true
}

// inferFieldRead implements §4.6.2: operand must be element or
// set-of-element; the field must exist. For a set operand, the result is a
// tensor whose outer dimension is the set and whose block is the field's
// declared type (only scalar or vector fields are legal operands here).
func (c *Checker) inferFieldRead(n hir.FieldReadExpr, write bool) (ir.Type, bool) {
	base, ok := c.inferExprRW(n.Operand, write)
	if !ok || !ir.Defined(base) {
		return nil, false
	}

	switch b := base.(type) {
	case *ir.Element:
		f, found := b.FieldByName(n.Field)
		if !found {
			c.report(n.Span(), "undefined field '%s'", n.Field)
			return nil, false
		}
		return f.Type, true

	case *ir.Set:
		f, found := b.Element.FieldByName(n.Field)
		if !found {
			c.report(n.Span(), "undefined field '%s'", n.Field)
			return nil, false
		}
		ft, isTensor := asTensor(f.Type)
		if !isTensor || ft.Order() > 1 {
			c.report(n.Span(), "field '%s' must be a scalar or vector to be read over a set", n.Field)
			return nil, false
		}
		// The field's type nests inside the set axis as its block, so a
		// field read over a set is always order 1. It is a column vector:
		// one value (or block) per set element, the natural orientation
		// for right-multiplication by an assembled matrix (spec.md §8's
		// "assemble-and-multiply" scenario).
		t, _ := ir.NewBlockTensor([]ir.IndexSet{ir.Named("", b)}, ft)
		t.ColumnVector = true
		return t, true

	default:
		c.report(n.Span(), "field read operand must be an element or a set")
		return nil, false
	}
}

// inferCall implements §4.6.2's Call rule: looked-up function; arity and
// per-argument types must match; the expression type is the function's
// result list. A function registered with zero declared arguments is
// treated as an intrinsic and suppresses the arity check.
func (c *Checker) inferCall(n hir.CallExpr) ([]ir.Type, bool) {
	sig, found := c.ctx.Functions[n.Func]
	if !found {
		c.report(n.Span(), "undeclared function '%s'", n.Func)
		return nil, false
	}

	argTypes := make([]ir.Type, 0, len(n.Args))
	allOK := true
	for _, a := range n.Args {
		t, ok := c.inferExpr(a)
		if !ok || !ir.Defined(t) {
			allOK = false
			continue
		}
		argTypes = append(argTypes, t)
	}
	if !allOK {
		return nil, false
	}

	if len(sig.Args) != 0 {
		if len(argTypes) != len(sig.Args) {
			c.report(n.Span(), "call to '%s' passes %d arguments but function expects %d", n.Func, len(argTypes), len(sig.Args))
			return nil, false
		}
		for i, want := range sig.Args {
			if !ir.Equals(argTypes[i], want) {
				c.report(n.Span(), "cannot assign a value of type '%s' to a target of type '%s'", argTypes[i], want)
				return nil, false
			}
		}
	}

	return sig.Results, true
}

// inferMap implements §4.6.2's map-reduce rule: synthesizes the actual
// argument list from the target set's element type and (for an edge set)
// a tuple of its endpoint element types, then checks arity and per-argument
// types against the function's declared arguments exactly as a Call would.
func (c *Checker) inferMap(n hir.MapExpr) ([]ir.Type, bool) {
	sig, found := c.ctx.Functions[n.Func]
	if !found {
		c.report(n.Span(), "undeclared function '%s'", n.Func)
		return nil, false
	}

	sym, found := c.ctx.Symbols.Lookup(n.Target)
	if !found {
		c.report(n.Span(), "undeclared set '%s'", n.Target)
		return nil, false
	}
	target, isSet := sym.Type.(*ir.Set)
	if !isSet {
		c.report(n.Span(), "map target '%s' must be a set", n.Target)
		return nil, false
	}

	partials := make([]ir.Type, 0, len(n.PartialArg))
	allOK := true
	for _, a := range n.PartialArg {
		t, ok := c.inferExpr(a)
		if !ok || !ir.Defined(t) {
			allOK = false
			continue
		}
		partials = append(partials, t)
	}
	if !allOK {
		return nil, false
	}

	actuals := append([]ir.Type{}, partials...)
	actuals = append(actuals, target.Element)

	if target.IsEdgeSet() {
		first := target.Endpoints[0]
		for _, ep := range target.Endpoints[1:] {
			if !ep.Element.Equals(first.Element) {
				c.report(n.Span(), "map over a heterogeneous edge set is not supported")
				return nil, false
			}
		}
		actuals = append(actuals, &ir.Tuple{Element: first.Element, Length: len(target.Endpoints)})
	}

	if len(actuals) != len(sig.Args) {
		c.report(n.Span(), "map operation passes %d arguments but function '%s' expects %d arguments", len(actuals), n.Func, len(sig.Args))
		return nil, false
	}
	for i, want := range sig.Args {
		if !ir.Equals(actuals[i], want) {
			c.report(n.Span(), "map operation passes argument of type '%s' to assembly function but function '%s' expects argument of type '%s'", actuals[i], n.Func, want)
			return nil, false
		}
	}

	return sig.Results, true
}
