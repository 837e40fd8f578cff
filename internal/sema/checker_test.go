package sema_test

import (
	"testing"

	"github.com/cwbudde/tensorc/internal/diag"
	"github.com/cwbudde/tensorc/internal/hirbuild"
	"github.com/cwbudde/tensorc/internal/ir"
	"github.com/cwbudde/tensorc/internal/sema"
)

func check(t *testing.T, src string) (*sema.Context, *diag.Collector) {
	t.Helper()
	prog, err := hirbuild.Parse([]byte(src))
	if err != nil {
		t.Fatalf("hirbuild.Parse: %v", err)
	}
	sink := diag.NewCollector()
	ctx := sema.NewContext()
	sema.NewChecker(ctx, sink).Check(prog)
	return ctx, sink
}

// TestAssembleAndMultiply mirrors spec.md §8's core scenario: a function
// assembled over an edge set via map-reduce, followed by a field read and a
// matrix-vector multiply whose result is stored back into a field over
// points. It must produce zero diagnostics and leave only the global scope
// open.
func TestAssembleAndMultiply(t *testing.T) {
	const src = `
elements:
  - name: Point
    fields:
      - {name: b, type: {scalar: float}}
      - {name: c, type: {scalar: float}}
  - name: Spring
    fields:
      - {name: a, type: {scalar: float}}
externs:
  - ident: {name: points, type: {set: {elem: Point}}}
  - ident: {name: springs, type: {set: {elem: Spring, endpoints: [points, points]}}}
functions:
  - name: f
    args:
      - {name: s, type: {elem: Spring}}
      - {name: p, type: {tuple: {elem: Point, length: 2}}}
    results:
      - {name: A, type: {tensor: {dims: [{name: points}, {name: points}], block: {scalar: float}}}}
    body:
      - assign:
          lhs:
            - tensor_read:
                tensor: {var: A}
                indices:
                  - {expr: {tuple_read: {tuple: {var: p}, index: {int: 0}}}}
                  - {expr: {tuple_read: {tuple: {var: p}, index: {int: 0}}}}
          rhs: {field_read: {operand: {var: s}, field: a}}
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: A}]
          rhs: {map: {func: f, target: springs}}
      - assign:
          lhs: [{var: b}]
          rhs: {field_read: {operand: {var: points}, field: b}}
      - assign:
          lhs: [{var: x}]
          rhs: {binop: {op: "*", left: {var: A}, right: {var: b}}}
      - assign:
          lhs:
            - field_read: {operand: {var: points}, field: c}
          rhs: {var: x}
`
	ctx, sink := check(t, src)
	if sink.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", sink.Diagnostics())
	}
	if ctx.Symbols.Depth() != 1 {
		t.Fatalf("expected scope stack depth 1 after checking, got %d", ctx.Symbols.Depth())
	}
}

// TestShapeErrorRowVecTimesRowVec mirrors spec.md §8: multiplying two
// non-column order-1 tensors must produce exactly one diagnostic.
func TestShapeErrorRowVecTimesRowVec(t *testing.T) {
	const src = `
externs:
  - ident: {name: row_vec, type: {tensor: {dims: [{range: 3}], block: {scalar: float}}}}
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: x}]
          rhs: {binop: {op: "*", left: {var: row_vec}, right: {var: row_vec}}}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

// TestUndeclaredElementField mirrors spec.md §8: reading a field the
// element never declared reports "undefined field '...'".
func TestUndeclaredElementField(t *testing.T) {
	const src = `
elements:
  - name: Node
    fields:
      - {name: x, type: {scalar: float}}
externs:
  - ident: {name: nodes, type: {set: {elem: Node}}}
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: v}]
          rhs: {field_read: {operand: {var: nodes}, field: zzz}}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
	if got := sink.Diagnostics()[0].Message; got != "undefined field 'zzz'" {
		t.Fatalf("unexpected diagnostic message: %q", got)
	}
}

// TestMultipleDiagnosticsInOnePass mirrors spec.md §8: three independent
// undeclared-variable references in one body produce three diagnostics, in
// source order.
func TestMultipleDiagnosticsInOnePass(t *testing.T) {
	const src = `
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: out1}]
          rhs: {var: missing1}
      - assign:
          lhs: [{var: out2}]
          rhs: {var: missing2}
      - assign:
          lhs: [{var: out3}]
          rhs: {var: missing3}
`
	_, sink := check(t, src)
	if sink.Len() != 3 {
		t.Fatalf("expected exactly three diagnostics, got %v", sink.Diagnostics())
	}
}

// TestBlockTypeSlackForConstants mirrors spec.md §8: a constant tensor may
// be initialized from a literal with extra leading/trailing unit dims. It
// checks two constants: a 3x3 identity literal against tensor[3,3](float),
// and the single-row literal [[1.0,2.0,3.0]] (inferred shape (1,3)) against
// tensor[3,1](float), which matches only once the unit dims are stripped.
func TestBlockTypeSlackForConstants(t *testing.T) {
	const identity = `
procs:
  - name: main
    body:
      - const:
          ident: {name: I, type: {tensor: {dims: [{range: 3}, {range: 3}], block: {scalar: float}}}}
          init:
            dense:
              - dense: [{float: 1.0}, {float: 0.0}, {float: 0.0}]
              - dense: [{float: 0.0}, {float: 1.0}, {float: 0.0}]
              - dense: [{float: 0.0}, {float: 0.0}, {float: 1.0}]
`
	_, sink := check(t, identity)
	if sink.Len() != 0 {
		t.Fatalf("expected zero diagnostics for const identity matrix, got %v", sink.Diagnostics())
	}

	const slack = `
procs:
  - name: main
    body:
      - const:
          ident: {name: v, type: {tensor: {dims: [{range: 3}, {range: 1}], block: {scalar: float}}}}
          init:
            dense:
              - dense: [{float: 1.0}, {float: 2.0}, {float: 3.0}]
`
	_, sink2 := check(t, slack)
	if sink2.Len() != 0 {
		t.Fatalf("expected zero diagnostics for const with unit-dim slack, got %v", sink2.Diagnostics())
	}
}

func TestExternRedeclarationIsMultipleDefinitions(t *testing.T) {
	const src = `
externs:
  - ident: {name: x, type: {scalar: int}}
  - ident: {name: x, type: {scalar: float}}
procs:
  - name: main
    body: []
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

func TestCallArityMismatch(t *testing.T) {
	const src = `
functions:
  - name: f
    args:
      - {name: a, type: {scalar: int}}
    results:
      - {name: r, type: {scalar: int}}
    body: []
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: out}]
          rhs: {call: {func: f, args: [{int: 1}, {int: 2}]}}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

func TestDenseLiteralDimError(t *testing.T) {
	const src = `
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: m}]
          rhs:
            dense:
              - dense: [{float: 1.0}, {float: 2.0}]
              - dense: [{float: 1.0}]
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

// TestMapArityMismatch mirrors spec.md §8's map-arity scenario: mapping a
// function that expects a 2-endpoint tuple over a set declared with no
// endpoints (i.e. not an edge set at all) must fail arity, not type.
func TestMapArityMismatch(t *testing.T) {
	const src = `
elements:
  - name: Spring
    fields:
      - {name: a, type: {scalar: float}}
externs:
  - ident: {name: springs, type: {set: {elem: Spring}}}
functions:
  - name: f
    args:
      - {name: s, type: {elem: Spring}}
      - {name: p, type: {tuple: {elem: Spring, length: 2}}}
    results:
      - {name: r, type: {scalar: float}}
    body: []
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: out}]
          rhs: {map: {func: f, target: springs}}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

// TestMapOverHeterogeneousEdgeSetRejected mirrors spec.md §9's preserved
// open-question decision: mapping over an edge set whose endpoints are not
// all the same element type is rejected outright.
func TestMapOverHeterogeneousEdgeSetRejected(t *testing.T) {
	const src = `
elements:
  - name: A
    fields:
      - {name: x, type: {scalar: float}}
  - name: B
    fields:
      - {name: y, type: {scalar: float}}
externs:
  - ident: {name: as, type: {set: {elem: A}}}
  - ident: {name: bs, type: {set: {elem: B}}}
  - ident: {name: mixed, type: {set: {elem: A, endpoints: [as, bs]}}}
functions:
  - name: f
    args:
      - {name: m, type: {elem: A}}
      - {name: ends, type: {tuple: {elem: A, length: 2}}}
    results:
      - {name: r, type: {scalar: float}}
    body: []
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: out}]
          rhs: {map: {func: f, target: mixed}}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
	if got := sink.Diagnostics()[0].Message; got != "map over a heterogeneous edge set is not supported" {
		t.Fatalf("unexpected diagnostic message: %q", got)
	}
}

// TestNestedBlockTensorMergesDomainsPerAxis exercises spec.md §3 invariant
// #4 and §4.6.1's NDTensorType rule against a genuinely nested block:
// tensor[points](tensor[points](float)) must come out order 1 (nesting
// deepens the points axis, it does not add a second axis), with both the
// outer and inner points index sets recorded on that one domain.
func TestNestedBlockTensorMergesDomainsPerAxis(t *testing.T) {
	const src = `
elements:
  - name: Point
externs:
  - ident: {name: points, type: {set: {elem: Point}}}
  - ident: {name: nested, type: {tensor: {dims: [{name: points}], block: {tensor: {dims: [{name: points}], block: {scalar: float}}}}}}
procs:
  - name: main
    body: []
`
	ctx, sink := check(t, src)
	if sink.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", sink.Diagnostics())
	}
	sym, found := ctx.Symbols.Lookup("nested")
	if !found {
		t.Fatal("expected 'nested' to be declared")
	}
	tensor, isTensor := sym.Type.(*ir.Tensor)
	if !isTensor {
		t.Fatalf("expected a tensor type, got %T", sym.Type)
	}
	if tensor.Order() != 1 {
		t.Fatalf("nesting must not grow order: got %d", tensor.Order())
	}
	if len(tensor.Domains[0]) != 2 {
		t.Fatalf("expected the points axis to carry both the outer and nested index sets, got %d", len(tensor.Domains[0]))
	}
}

// TestNestedBlockTensorOrderMismatchIsRejected covers the failure half of
// invariant #4: a block's order must equal the outer dimension count it is
// nested under.
func TestNestedBlockTensorOrderMismatchIsRejected(t *testing.T) {
	const src = `
elements:
  - name: Point
externs:
  - ident: {name: points, type: {set: {elem: Point}}}
  - ident: {name: bad, type: {tensor: {dims: [{name: points}], block: {tensor: {dims: [{range: 3}, {range: 3}], block: {scalar: float}}}}}}
procs:
  - name: main
    body: []
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.Diagnostics())
	}
}

func TestUndefinedNeverCascades(t *testing.T) {
	// The right-hand side fails to resolve (undeclared variable), so the
	// left-hand side must not receive a second, derived diagnostic about
	// assignment incompatibility.
	const src = `
externs:
  - ident: {name: n, type: {scalar: int}}
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: n}]
          rhs: {var: missing}
`
	_, sink := check(t, src)
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic (no cascade), got %v", sink.Diagnostics())
	}
}
