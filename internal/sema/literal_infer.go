package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
	"github.com/cwbudde/tensorc/internal/sema/literal"
)

// inferDenseLit implements §4.7: infer the nested literal's rank, per-axis
// length, and scalar kind, then publish it as an ir.Tensor. Shape/kind
// mismatches are caught here and turned into a diagnostic at the literal's
// own span, per §7's "dense-literal shape errors ... caught at the literal
// node".
func (c *Checker) inferDenseLit(n hir.DenseLit) (ir.Type, bool) {
	elem, ok := literalElem(n)
	if !ok {
		c.report(n.Span(), "literal must contain only numeric literals and nested literals")
		return nil, false
	}
	shape, err := literal.Infer(elem)
	if err != nil {
		c.report(n.Span(), "%s", err.Error())
		return nil, false
	}
	return shape.Tensor(false), true
}

// literalElem converts a HIR literal expression tree into the minimal shape
// literal.Infer needs. Only numeric scalar literals and nested DenseLit
// rows are valid members of a dense literal; anything else fails the
// conversion so the caller reports a single clear diagnostic rather than
// literal.Infer seeing a nonsensical shape.
func literalElem(e hir.Expr) (literal.Elem, bool) {
	switch n := e.(type) {
	case hir.IntLit:
		return literal.Elem{IsScalar: true, Scalar: ir.KindInt}, true
	case hir.FloatLit:
		return literal.Elem{IsScalar: true, Scalar: ir.KindFloat}, true
	case hir.DenseLit:
		children := make([]literal.Elem, 0, len(n.Rows))
		for _, row := range n.Rows {
			child, ok := literalElem(row)
			if !ok {
				return literal.Elem{}, false
			}
			children = append(children, child)
		}
		return literal.Elem{Children: children}, true
	default:
		return literal.Elem{}, false
	}
}
