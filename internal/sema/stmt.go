package sema

import (
	"github.com/cwbudde/tensorc/internal/hir"
	"github.com/cwbudde/tensorc/internal/ir"
)

func (c *Checker) checkStmt(s hir.Stmt) {
	switch n := s.(type) {
	case hir.VarDecl:
		c.checkVarDecl(n)
	case hir.ConstDecl:
		c.checkConstDecl(n)
	case hir.AssignStmt:
		c.checkAssignStmt(n)
	case hir.WhileStmt:
		c.checkWhileStmt(n)
	case hir.IfStmt:
		c.checkIfStmt(n)
	case hir.ForStmt:
		c.checkForStmt(n)
	case hir.PrintStmt:
		c.checkPrintStmt(n)
	default:
		c.report(s.Span(), "internal: unrecognized statement")
	}
}

// checkAssignStmt implements §4.6.3: infer the RHS (which may be
// multi-valued), infer each LHS in write context, require matching counts,
// and check each LHS/RHS type pair — allowing a declared tensor target to
// accept a matching-component scalar initializer. A LHS VarExpr with no
// existing binding becomes a new local typed from the RHS (or Undefined if
// the RHS failed).
func (c *Checker) checkAssignStmt(n hir.AssignStmt) {
	rhs, rhsOK := c.inferExprMulti(n.RHS)

	lhsTypes := make([]ir.Type, len(n.LHS))
	lhsOK := make([]bool, len(n.LHS))
	for i, l := range n.LHS {
		t, ok := c.inferLHS(l)
		lhsTypes[i] = t
		lhsOK[i] = ok
	}

	if rhsOK && len(n.LHS) != len(rhs) {
		c.report(n.Span(), "assignment has %d targets but expression yields %d values", len(n.LHS), len(rhs))
		rhsOK = false
	}

	for i, l := range n.LHS {
		varExpr, isVar := l.(hir.VarExpr)
		var rt ir.Type
		if rhsOK {
			rt = rhs[i]
		}

		if isVar {
			if _, found := c.ctx.Symbols.Lookup(varExpr.Name); !found {
				newType := ir.Undefined
				if rhsOK && ir.Defined(rt) {
					newType = rt
				}
				c.ctx.Symbols.Define(varExpr.Name, newType, ReadWrite)
				continue
			}
		}

		if !lhsOK[i] || !ir.Defined(lhsTypes[i]) || !rhsOK || !ir.Defined(rt) {
			continue
		}
		if !assignCompatible(lhsTypes[i], rt) {
			c.report(l.Span(), "cannot assign a value of type '%s' to a target of type '%s'", rt, lhsTypes[i])
		}
	}
}

// assignCompatible implements the scalar-initializes-tensor exception of
// §4.6.3 on top of plain structural equality.
func assignCompatible(target, value ir.Type) bool {
	if ir.Equals(target, value) {
		return true
	}
	tt, tOK := target.(*ir.Tensor)
	vs, vOK := value.(*ir.Scalar)
	if tOK && vOK {
		return tt.Component == vs.Kind()
	}
	return false
}

// checkVarDecl implements §4.6.3: register the read-write symbol before
// checking the initializer, so a self-referencing initializer is rejected
// by scope (the name already resolves, just to the not-yet-typed symbol)
// rather than by a separate cycle check.
func (c *Checker) checkVarDecl(n hir.VarDecl) {
	declType, declOK := c.lowerType(n.Ident.Type)
	if !declOK {
		declType = ir.Undefined
	}
	c.ctx.Symbols.Define(n.Ident.Name, declType, ReadWrite)

	if n.Init == nil {
		return
	}
	initType, initOK := c.inferExpr(n.Init)
	if !declOK || !initOK || !ir.Defined(initType) {
		return
	}
	if !assignCompatible(declType, initType) {
		c.report(n.Span(), "cannot assign a value of type '%s' to a target of type '%s'", initType, declType)
	}
}

// checkConstDecl implements §4.6.3: like VarDecl but read-only, and with
// the block-type slack rule — a tensor-typed constant may be initialized
// by a literal whose shape agrees modulo leading/trailing outer dimensions
// of length 1.
func (c *Checker) checkConstDecl(n hir.ConstDecl) {
	declType, declOK := c.lowerType(n.Ident.Type)
	if !declOK {
		declType = ir.Undefined
	}
	c.ctx.Symbols.Define(n.Ident.Name, declType, Read)

	if n.Init == nil {
		return
	}
	initType, initOK := c.inferExpr(n.Init)
	if !declOK || !initOK || !ir.Defined(initType) {
		return
	}
	if assignCompatible(declType, initType) {
		return
	}
	if declTensor, ok := declType.(*ir.Tensor); ok {
		if initTensor, ok := initType.(*ir.Tensor); ok && tensorEqualModuloUnitSlack(declTensor, initTensor) {
			return
		}
	}
	c.report(n.Span(), "cannot assign a value of type '%s' to a target of type '%s'", initType, declType)
}

// tensorEqualModuloUnitSlack implements the constant-only block-type slack
// rule: a and b are compatible if, after stripping any leading/trailing
// domains of length 1 from both sides, the remaining domains and component
// types line up. This asymmetry (constants get the slack,
// variables do not) is deliberate — see DESIGN.md.
func tensorEqualModuloUnitSlack(a, b *ir.Tensor) bool {
	if a.Component != b.Component {
		return false
	}
	return stripUnitDomains(a.Domains).equalsAll(stripUnitDomains(b.Domains))
}

type domainList []ir.IndexDomain

func (d domainList) equalsAll(o domainList) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !d[i].Equals(o[i]) {
			return false
		}
	}
	return true
}

func stripUnitDomains(domains []ir.IndexDomain) domainList {
	start, end := 0, len(domains)
	for start < end && isUnitRange(domains[start]) {
		start++
	}
	for end > start && isUnitRange(domains[end-1]) {
		end--
	}
	return domainList(domains[start:end])
}

// isUnitRange reports whether a domain is an unblocked, length-1 range axis:
// it must hold a single index set (no nested block structure), and that
// index set must be a range of length 1.
func isUnitRange(d ir.IndexDomain) bool {
	return len(d) == 1 && d[0].Variant == ir.IndexSetRange && d[0].Length == 1
}

func (c *Checker) checkWhileStmt(n hir.WhileStmt) {
	cond, ok := c.inferExpr(n.Cond)
	if ok && ir.Defined(cond) && !ir.Equals(cond, ir.Bool) {
		c.report(n.Cond.Span(), "while condition must be a scalar boolean")
	}
	c.ctx.Symbols.Scope()
	defer c.ctx.Symbols.Unscope()
	c.checkBlock(n.Body)
}

func (c *Checker) checkIfStmt(n hir.IfStmt) {
	cond, ok := c.inferExpr(n.Cond)
	if ok && ir.Defined(cond) && !ir.Equals(cond, ir.Bool) {
		c.report(n.Cond.Span(), "if condition must be a scalar boolean")
	}
	func() {
		c.ctx.Symbols.Scope()
		defer c.ctx.Symbols.Unscope()
		c.checkBlock(n.Then)
	}()
	if n.Else != nil {
		func() {
			c.ctx.Symbols.Scope()
			defer c.ctx.Symbols.Unscope()
			c.checkBlock(n.Else)
		}()
	}
}

// checkForStmt implements §4.6.3: bounds must be integral; the loop
// variable is introduced as a read-only integer in the loop's own scope.
func (c *Checker) checkForStmt(n hir.ForStmt) {
	lo, loOK := c.inferExpr(n.Domain.Lo)
	if loOK && ir.Defined(lo) && !ir.Equals(lo, ir.Int) {
		c.report(n.Domain.Lo.Span(), "for-loop lower bound must be an integer")
	}
	hi, hiOK := c.inferExpr(n.Domain.Hi)
	if hiOK && ir.Defined(hi) && !ir.Equals(hi, ir.Int) {
		c.report(n.Domain.Hi.Span(), "for-loop upper bound must be an integer")
	}

	c.ctx.Symbols.Scope()
	defer c.ctx.Symbols.Unscope()
	c.ctx.Symbols.Define(n.Var, ir.Int, Read)
	c.checkBlock(n.Body)
}

// checkPrintStmt implements §4.6.3: the argument must be a single tensor.
func (c *Checker) checkPrintStmt(n hir.PrintStmt) {
	t, ok := c.inferExpr(n.Arg)
	if !ok || !ir.Defined(t) {
		return
	}
	if _, isTensor := asTensor(t); !isTensor {
		c.report(n.Arg.Span(), "print argument must be a single tensor")
	}
}
