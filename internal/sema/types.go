package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// lowerIndexSet lowers one axis/endpoint domain expression (spec.md
// §4.6.1). Failure reports a diagnostic and returns ok == false; callers
// must not publish a domain entry for a failed lowering.
func (c *Checker) lowerIndexSet(e hir.IndexSetExpr) (ir.IndexSet, bool) {
	switch n := e.(type) {
	case hir.RangeIndexSet:
		return ir.Range(n.N), true
	case hir.DynamicIndexSet:
		return ir.Dynamic(), true
	case hir.SetIndexSet:
		sym, ok := c.ctx.Symbols.Lookup(n.Name)
		if !ok {
			c.report(n.Span(), "undeclared set '%s'", n.Name)
			return ir.IndexSet{}, false
		}
		set, ok := sym.Type.(*ir.Set)
		if !ok {
			c.report(n.Span(), "index set must be a set, a range, or dynamic (*)")
			return ir.IndexSet{}, false
		}
		return ir.Named(n.Name, set), true
	default:
		c.report(e.Span(), "internal: unrecognized index set expression")
		return ir.IndexSet{}, false
	}
}

// lowerType lowers a type expression to an ir.Type (spec.md §4.6.1).
func (c *Checker) lowerType(e hir.TypeExpr) (ir.Type, bool) {
	switch n := e.(type) {
	case hir.ScalarTypeExpr:
		switch n.Kind {
		case hir.ScalarInt:
			return ir.Int, true
		case hir.ScalarFloat:
			return ir.Float, true
		default:
			return ir.Bool, true
		}

	case hir.ElementTypeExpr:
		el, ok := c.ctx.Elements[n.Name]
		if !ok {
			c.report(n.Span(), "undeclared element type '%s'", n.Name)
			return nil, false
		}
		return el, true

	case hir.SetTypeExpr:
		el, elOK := c.lowerType(n.Element)
		var elem *ir.Element
		if elOK {
			elem, elOK = el.(*ir.Element)
			if !elOK {
				c.report(n.Element.Span(), "undeclared element type '%s'", n.Element.Name)
			}
		}

		endpoints := make([]*ir.Set, 0, len(n.Endpoints))
		allOK := elOK
		for _, ep := range n.Endpoints {
			sym, ok := c.ctx.Symbols.Lookup(ep.SetName)
			if !ok {
				c.report(ep.Span(), "undeclared set '%s'", ep.SetName)
				allOK = false
				continue
			}
			set, ok := sym.Type.(*ir.Set)
			if !ok {
				c.report(ep.Span(), "index set must be a set, a range, or dynamic (*)")
				allOK = false
				continue
			}
			endpoints = append(endpoints, set)
		}
		if !allOK {
			return nil, false
		}
		return &ir.Set{Element: elem, Endpoints: endpoints}, true

	case hir.TupleTypeExpr:
		el, ok := c.lowerType(n.Element)
		if !ok {
			return nil, false
		}
		elem, ok := el.(*ir.Element)
		if !ok {
			c.report(n.Element.Span(), "undeclared element type '%s'", n.Element.Name)
			return nil, false
		}
		if n.Length < 1 {
			c.report(n.Span(), "tuple length must be at least 1")
			return nil, false
		}
		return &ir.Tuple{Element: elem, Length: n.Length}, true

	case hir.NDTensorTypeExpr:
		return c.lowerNDTensorType(n)

	default:
		c.report(e.Span(), "internal: unrecognized type expression")
		return nil, false
	}
}

// lowerNDTensorType implements the block-nesting rule of §4.6.1:
// tensor[idx1,...,idxN](block). The outer index sets and the block's own
// type are lowered here; ir.NewBlockTensor does the actual per-axis merge
// (block order 0 vs matching the outer dimension count).
func (c *Checker) lowerNDTensorType(n hir.NDTensorTypeExpr) (ir.Type, bool) {
	blockType, ok := c.lowerType(n.Block)
	if !ok {
		return nil, false
	}

	var block *ir.Tensor
	switch b := blockType.(type) {
	case *ir.Tensor:
		block = b
	case *ir.Scalar:
		block = &ir.Tensor{Component: b.Kind()}
	default:
		c.report(n.Span(), "tensor block type must be a scalar or tensor")
		return nil, false
	}

	idxSets := make([]ir.IndexSet, 0, len(n.IndexSets))
	allOK := true
	for _, ie := range n.IndexSets {
		is, ok := c.lowerIndexSet(ie)
		if !ok {
			allOK = false
			continue
		}
		idxSets = append(idxSets, is)
	}
	if !allOK {
		return nil, false
	}

	t, ok := ir.NewBlockTensor(idxSets, block)
	if !ok {
		c.report(n.Span(), "block tensor's inner order must equal the outer dimension count")
		return nil, false
	}
	if n.ColumnVector {
		if t.Order() != 1 {
			c.report(n.Span(), "column-vector tensor must have exactly one dimension")
			return nil, false
		}
		t.ColumnVector = true
	}
	return t, true
}
