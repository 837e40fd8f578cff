package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

// inferBinary dispatches a binary HIR node to the shape rule matching its
// operator group (spec.md §4.6.2).
func (c *Checker) inferBinary(n hir.BinaryExpr) (ir.Type, bool) {
	left, leftOK := c.inferExpr(n.Left)
	right, rightOK := c.inferExpr(n.Right)
	if !leftOK || !rightOK || !ir.Defined(left) || !ir.Defined(right) {
		return nil, false
	}

	switch n.Op {
	case hir.OpAdd, hir.OpSub, hir.OpElwiseMul, hir.OpElwiseDiv:
		return c.inferArithmetic(n, left, right)
	case hir.OpDiv:
		return c.inferScalarTensorDivision(n, left, right)
	case hir.OpMul:
		return c.inferMatMul(n, left, right)
	case hir.OpEq, hir.OpNe, hir.OpLt, hir.OpLe, hir.OpGt, hir.OpGe:
		return c.inferComparison(n, left, right)
	case hir.OpAnd, hir.OpOr, hir.OpXor:
		return c.inferBooleanOp(n, left, right)
	default:
		c.report(n.Span(), "internal: unrecognized binary operator")
		return nil, false
	}
}

// inferArithmetic implements `+`, `-`, `.*`, `./`: both operands numeric
// tensors. If one is scalar, the result is the non-scalar operand's type
// and component kinds must match exactly; otherwise the operand tensor
// types must be structurally equal (including column-vector), and the
// result equals either operand.
func (c *Checker) inferArithmetic(n hir.BinaryExpr, left, right ir.Type) (ir.Type, bool) {
	lt, lok := asTensor(left)
	rt, rok := asTensor(right)
	if !lok || !rok || !ir.IsNumericScalarKind(lt.Component) || !ir.IsNumericScalarKind(rt.Component) {
		c.report(n.Span(), "operands of arithmetic operators must be numeric tensors")
		return nil, false
	}

	lScalar, rScalar := lt.Order() == 0, rt.Order() == 0
	switch {
	case lScalar && !rScalar:
		if lt.Component != rt.Component {
			c.report(n.Span(), "cannot combine tensors of component types '%s' and '%s'", lt.Component, rt.Component)
			return nil, false
		}
		return right, true
	case rScalar && !lScalar:
		if lt.Component != rt.Component {
			c.report(n.Span(), "cannot combine tensors of component types '%s' and '%s'", lt.Component, rt.Component)
			return nil, false
		}
		return left, true
	default:
		if !lt.Equals(rt) {
			c.report(n.Span(), "cannot assign a value of type '%s' to a target of type '%s'", rt, lt)
			return nil, false
		}
		return left, true
	}
}

// inferScalarTensorDivision implements `/`: identical component types, at
// least one operand scalar; non-scalar÷non-scalar is rejected.
func (c *Checker) inferScalarTensorDivision(n hir.BinaryExpr, left, right ir.Type) (ir.Type, bool) {
	lt, lok := asTensor(left)
	rt, rok := asTensor(right)
	if !lok || !rok || !ir.IsNumericScalarKind(lt.Component) || !ir.IsNumericScalarKind(rt.Component) {
		c.report(n.Span(), "operands of '/' must be numeric tensors")
		return nil, false
	}
	if lt.Component != rt.Component {
		c.report(n.Span(), "cannot divide tensors of component types '%s' and '%s'", lt.Component, rt.Component)
		return nil, false
	}

	lScalar, rScalar := lt.Order() == 0, rt.Order() == 0
	switch {
	case !lScalar && !rScalar:
		c.report(n.Span(), "division of two non-scalar tensors is not supported")
		return nil, false
	case rScalar:
		return left, true
	default:
		return right, true
	}
}

// inferComparison implements `==`, `!=`, `<`, etc.: both operands scalar of
// identical scalar type; result bool.
func (c *Checker) inferComparison(n hir.BinaryExpr, left, right ir.Type) (ir.Type, bool) {
	ls, lok := left.(*ir.Scalar)
	rs, rok := right.(*ir.Scalar)
	if !lok || !rok || ls.Kind() != rs.Kind() {
		c.report(n.Span(), "operands of comparison operators must be scalars of the same type")
		return nil, false
	}
	return ir.Bool, true
}

// inferBooleanOp implements `and`, `or`, `xor`: both operands bool.
func (c *Checker) inferBooleanOp(n hir.BinaryExpr, left, right ir.Type) (ir.Type, bool) {
	if !ir.Equals(left, ir.Bool) || !ir.Equals(right, ir.Bool) {
		c.report(n.Span(), "operands of boolean operators must be bool")
		return nil, false
	}
	return ir.Bool, true
}

// inferMatMul implements the full `*` shape table of §4.6.2.
func (c *Checker) inferMatMul(n hir.BinaryExpr, left, right ir.Type) (ir.Type, bool) {
	lt, lok := asTensor(left)
	rt, rok := asTensor(right)
	if !lok || !rok || !ir.IsNumericScalarKind(lt.Component) || !ir.IsNumericScalarKind(rt.Component) {
		c.report(n.Span(), "operands of '*' must be numeric tensors")
		return nil, false
	}
	if lt.Component != rt.Component {
		c.report(n.Span(), "cannot multiply tensors of component types '%s' and '%s'", lt.Component, rt.Component)
		return nil, false
	}

	lo, ro := lt.Order(), rt.Order()

	switch {
	case lo == 0:
		return right, true
	case ro == 0:
		return left, true

	case lo == 1 && ro == 1:
		if lt.ColumnVector == rt.ColumnVector {
			if lt.ColumnVector {
				c.report(n.Span(), "cannot multiply two column vectors")
			} else {
				c.report(n.Span(), "cannot multiply two row vectors")
			}
			return nil, false
		}
		if !lt.ColumnVector {
			c.report(n.Span(), "left operand of outer product must be a column vector")
			return nil, false
		}
		// left column, right row: outer product, order 2.
		if !lt.Domains[0].Equals(rt.Domains[0]) {
			c.report(n.Span(), "mismatched vector lengths in outer product")
			return nil, false
		}
		return &ir.Tensor{Component: lt.Component, Domains: []ir.IndexDomain{lt.Domains[0], rt.Domains[0]}}, true

	case lo == 2 && ro == 1:
		if !rt.ColumnVector {
			c.report(n.Span(), "right operand of matrix-vector multiplication must be a column vector")
			return nil, false
		}
		if !lt.Domains[1].Equals(rt.Domains[0]) {
			c.report(n.Span(), "inner dimensions do not match in matrix-vector multiplication")
			return nil, false
		}
		return &ir.Tensor{Component: lt.Component, Domains: []ir.IndexDomain{lt.Domains[0]}, ColumnVector: true}, true

	case lo == 1 && ro == 2:
		if lt.ColumnVector {
			c.report(n.Span(), "left operand of vector-matrix multiplication must be a row vector")
			return nil, false
		}
		if !lt.Domains[0].Equals(rt.Domains[0]) {
			c.report(n.Span(), "inner dimensions do not match in vector-matrix multiplication")
			return nil, false
		}
		return &ir.Tensor{Component: lt.Component, Domains: []ir.IndexDomain{rt.Domains[1]}}, true

	case lo == 2 && ro == 2:
		if !lt.Domains[1].Equals(rt.Domains[0]) {
			c.report(n.Span(), "inner dimensions do not match in matrix multiplication")
			return nil, false
		}
		return &ir.Tensor{Component: lt.Component, Domains: []ir.IndexDomain{lt.Domains[0], rt.Domains[1]}}, true

	default:
		c.report(n.Span(), "cannot multiply tensors of order 3 or greater using *")
		return nil, false
	}
}
