// Package literal infers the shape and scalar kind of dense bracketed
// literals (spec.md §4.7) ahead of the type checker turning that shape into
// an ir.Tensor. It is a self-contained recursive helper: the source models
// its early exit with exceptions, but since Go has no such non-local
// control transfer, Infer returns a structured error instead (the design
// notes call this out explicitly as the direct Go equivalent).
package literal

import (
	"fmt"

	"github.com/cwbudde/tensorc/internal/ir"
)

// Shape is the inferred rank, per-axis length, and scalar kind of a dense
// literal.
type Shape struct {
	Lengths []int
	Scalar  ir.Kind
}

func (s Shape) Rank() int { return len(s.Lengths) }

// DimError reports that sibling rows of a nested literal disagree on shape.
type DimError struct {
	Want, Got Shape
}

func (e *DimError) Error() string {
	return fmt.Sprintf("inconsistent literal shape: expected %v, got %v", e.Want.Lengths, e.Got.Lengths)
}

// TypeError reports that sibling scalars disagree on kind (int vs float;
// bool never participates in a dense literal).
type TypeError struct {
	Want, Got ir.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("inconsistent literal element type: expected %s, got %s", e.Want, e.Got)
}

// Elem is the minimal shape of a literal's leaf or child the inference
// helper needs: either a scalar kind (leaf) or a list of child elements
// (a row). Callers adapt their own literal Expr representation into this
// shape; internal/sema does so for hir.DenseLit/IntLit/FloatLit.
type Elem struct {
	IsScalar bool
	Scalar   ir.Kind // meaningful when IsScalar
	Children []Elem  // meaningful when !IsScalar
}

// Infer computes the Shape of e, recursively validating that every row at
// a given nesting depth agrees on both sub-shape and scalar kind.
func Infer(e Elem) (Shape, error) {
	if e.IsScalar {
		return Shape{Scalar: e.Scalar}, nil
	}
	if len(e.Children) == 0 {
		return Shape{}, fmt.Errorf("empty literal has no inferable shape")
	}

	first, err := Infer(e.Children[0])
	if err != nil {
		return Shape{}, err
	}
	for _, child := range e.Children[1:] {
		got, err := Infer(child)
		if err != nil {
			return Shape{}, err
		}
		if got.Scalar != first.Scalar {
			return Shape{}, &TypeError{Want: first.Scalar, Got: got.Scalar}
		}
		if !lengthsEqual(got.Lengths, first.Lengths) {
			return Shape{}, &DimError{Want: first, Got: got}
		}
	}

	lengths := make([]int, 0, len(first.Lengths)+1)
	lengths = append(lengths, len(e.Children))
	lengths = append(lengths, first.Lengths...)
	return Shape{Lengths: lengths, Scalar: first.Scalar}, nil
}

func lengthsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
