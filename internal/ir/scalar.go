package ir

// Scalar is one of the three built-in scalar types (spec.md §3).
type Scalar struct {
	kind Kind
}

// Int, Float and Bool are the three interned scalar types. Scalars are
// trivially structural: there is exactly one value of each kind, so these
// package vars double as the intern table.
var (
	Int   Type = &Scalar{kind: KindInt}
	Float Type = &Scalar{kind: KindFloat}
	Bool  Type = &Scalar{kind: KindBool}
)

func (s *Scalar) Kind() Kind    { return s.kind }
func (s *Scalar) Defined() bool { return true }

func (s *Scalar) String() string {
	return s.kind.String()
}

// Equals implements the §3 rule that a scalar tensor (order 0) equals its
// component type for assignment compatibility: Scalar.Equals(t) succeeds
// against both the matching Scalar and an order-0 Tensor of the same
// component kind.
func (s *Scalar) Equals(other Type) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case *Scalar:
		return s.kind == o.kind
	case *Tensor:
		return o.Order() == 0 && o.Component == s.kind
	default:
		return false
	}
}

// ScalarOf returns the interned Scalar type for a component kind, or nil if
// k is not a scalar kind.
func ScalarOf(k Kind) Type {
	switch k {
	case KindInt:
		return Int
	case KindFloat:
		return Float
	case KindBool:
		return Bool
	default:
		return nil
	}
}

// IsNumericScalarKind reports whether k is int or float (not bool) — used to
// enforce invariant #5: boolean tensors are disallowed as operands of
// numeric operators.
func IsNumericScalarKind(k Kind) bool {
	return k == KindInt || k == KindFloat
}
