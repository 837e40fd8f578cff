package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestUndefinedNeverEqualsItself(t *testing.T) {
	if Undefined.Equals(Undefined) {
		t.Fatal("Undefined must compare unequal to itself")
	}
	if Defined(Undefined) {
		t.Fatal("Undefined must report Defined() == false")
	}
	if Defined(nil) {
		t.Fatal("a nil Type must report Defined() == false")
	}
}

func TestScalarEqualsOrderZeroTensor(t *testing.T) {
	ord0 := &Tensor{Component: KindInt}
	if !Int.Equals(ord0) {
		t.Fatal("Int should equal an order-0 int tensor")
	}
	if !ord0.Equals(Int) {
		t.Fatal("an order-0 int tensor should equal Int")
	}

	ord1 := &Tensor{Component: KindInt, Domains: []IndexDomain{{Range(3)}}}
	if Int.Equals(ord1) {
		t.Fatal("Int must not equal an order-1 tensor")
	}
}

func TestTensorEqualityComparesColumnVectorFlag(t *testing.T) {
	row := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}}}
	col := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}}, ColumnVector: true}

	if row.Equals(col) {
		t.Fatal("a row tensor must not equal a column tensor with the same domains")
	}
	if !row.Equals(&Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}}}) {
		t.Fatal("two equivalently-shaped row tensors should be equal")
	}
}

func TestTensorEqualityComparesDomains(t *testing.T) {
	a := &Tensor{Component: KindInt, Domains: []IndexDomain{{Range(2)}, {Range(3)}}}
	b := &Tensor{Component: KindInt, Domains: []IndexDomain{{Range(2)}, {Range(4)}}}
	if a.Equals(b) {
		t.Fatal("tensors with different domain lengths must not be equal")
	}
}

func TestNamedIndexSetEqualityIsStructural(t *testing.T) {
	points := &Element{Name: "Point"}
	verts := &Set{Element: points}
	a := Named("Verts", verts)
	b := Named("OtherVerts", &Set{Element: points})
	if !a.Equals(b) {
		t.Fatal("two named index sets over structurally-equal sets should be equal regardless of name")
	}
}

func TestDynamicIndexSetsAlwaysEqual(t *testing.T) {
	if !Dynamic().Equals(Dynamic()) {
		t.Fatal("two dynamic index sets should always be equal")
	}
}

func TestElementEqualityIsNominal(t *testing.T) {
	a := &Element{Name: "Point", Fields: []Field{{Name: "x", Type: Float}}}
	b := &Element{Name: "Point", Fields: []Field{{Name: "x", Type: Float}}}
	if a.Equals(b) {
		t.Fatal("two distinct element declarations must not be equal even with identical fields")
	}
	if !a.Equals(a) {
		t.Fatal("an element must equal itself")
	}
}

func TestEdgeSetEqualityComparesOrderedEndpoints(t *testing.T) {
	vertex := &Element{Name: "Vertex"}
	verts := &Set{Element: vertex}
	edgeElem := &Element{Name: "Edge"}

	e1 := &Set{Element: edgeElem, Endpoints: []*Set{verts, verts}}
	e2 := &Set{Element: edgeElem, Endpoints: []*Set{verts, verts}}
	e3 := &Set{Element: edgeElem, Endpoints: []*Set{verts}}

	if !e1.Equals(e2) {
		t.Fatal("edge sets with matching ordered endpoints should be equal")
	}
	if e1.Equals(e3) {
		t.Fatal("edge sets with a different endpoint count must not be equal")
	}
}

func TestTupleEquality(t *testing.T) {
	elem := &Element{Name: "Point"}
	a := &Tuple{Element: elem, Length: 3}
	b := &Tuple{Element: elem, Length: 3}
	c := &Tuple{Element: elem, Length: 4}

	if !a.Equals(b) {
		t.Fatal("tuples over the same element and length should be equal")
	}
	if a.Equals(c) {
		t.Fatal("tuples of different lengths must not be equal")
	}
}

// TestBlockTensorNestsWithinTheSameAxis pins invariant #4: nesting a block
// tensor inside an outer tensor deepens each axis's own domain, it never
// appends a new axis — tensor[points](tensor[points](float)) must come out
// order 1, not order 2.
func TestBlockTensorNestsWithinTheSameAxis(t *testing.T) {
	inner := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}}}
	outer, ok := NewBlockTensor([]IndexSet{Range(2)}, inner)
	if !ok {
		t.Fatal("NewBlockTensor should succeed")
	}
	if outer.Order() != 1 {
		t.Fatalf("nesting must not grow order: got %d", outer.Order())
	}
	want := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(2), Range(3)}}}
	if diff := cmp.Diff(want, outer, cmpopts.IgnoreUnexported()); diff != "" {
		t.Fatalf("unexpected block tensor (-want +got):\n%s", diff)
	}
}

// TestBlockTensorNestsEachAxisIndependently covers an order-2 outer built
// over an order-2 block: each axis merges with its own positional block
// domain, not a cross product of the two.
func TestBlockTensorNestsEachAxisIndependently(t *testing.T) {
	inner := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}, {Range(4)}}}
	outer, ok := NewBlockTensor([]IndexSet{Range(2), Range(5)}, inner)
	if !ok {
		t.Fatal("NewBlockTensor should succeed")
	}
	if outer.Order() != 2 {
		t.Fatalf("expected order 2, got %d", outer.Order())
	}
	want := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(2), Range(3)}, {Range(5), Range(4)}}}
	if diff := cmp.Diff(want, outer, cmpopts.IgnoreUnexported()); diff != "" {
		t.Fatalf("unexpected block tensor (-want +got):\n%s", diff)
	}
}

func TestBlockTensorRejectsMismatchedInnerOrder(t *testing.T) {
	inner := &Tensor{Component: KindFloat, Domains: []IndexDomain{{Range(3)}, {Range(4)}}}
	if _, ok := NewBlockTensor([]IndexSet{Range(2)}, inner); ok {
		t.Fatal("NewBlockTensor should reject a block whose order doesn't match the outer dimension count")
	}
}

func TestBlockTensorOrderZeroLeafContributesOnlyComponent(t *testing.T) {
	leaf := &Tensor{Component: KindInt}
	outer, ok := NewBlockTensor([]IndexSet{Range(5)}, leaf)
	if !ok {
		t.Fatal("NewBlockTensor should succeed")
	}
	if outer.Order() != 1 || outer.Component != KindInt {
		t.Fatalf("expected a 1-order int tensor, got %s", outer)
	}
}
