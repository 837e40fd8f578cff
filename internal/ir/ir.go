// Package ir implements the value type system described in spec.md §3/§4.2:
// scalars, tensors whose dimensions are index sets, element records, sets,
// edge sets, and tuples. Types are value objects with structural equality;
// the analyzer never mutates one after construction.
package ir

// Kind discriminates the IR type variants (spec.md §3's "tagged variant").
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTensor
	KindElement
	KindSet
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTensor:
		return "tensor"
	case KindElement:
		return "element"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	default:
		return "undefined"
	}
}

// IsScalarKind reports whether k is one of the three scalar component kinds.
func IsScalarKind(k Kind) bool {
	return k == KindInt || k == KindFloat || k == KindBool
}

// Type is the common interface of every IR value type.
//
// Equals implements structural equality, not identity: two independently
// constructed Tensor values with the same component, domains and
// column-vector flag compare equal. Elements are the nominal exception:
// they compare by declaration identity (see Element.Equals). Undefined
// compares unequal to everything, including itself (spec.md §4.2), so that a
// parent node gated on "is this child's type defined" never accidentally
// treats two unrelated errors as compatible.
type Type interface {
	Kind() Kind
	String() string
	Equals(other Type) bool
	// Defined reports whether this type denotes a real value type. It is
	// false only for Undefined, which marks "a previous error was already
	// reported for this subexpression, do not cascade."
	Defined() bool
}

// undefinedType is the sentinel "previous error, do not re-report" type.
type undefinedType struct{}

// Undefined is returned by any inference operation that failed after
// already reporting a diagnostic. Parents must treat it as "stop checking
// this branch further" rather than report a second, derived diagnostic.
var Undefined Type = undefinedType{}

func (undefinedType) Kind() Kind          { return KindUndefined }
func (undefinedType) String() string      { return "<undefined>" }
func (undefinedType) Defined() bool       { return false }
func (undefinedType) Equals(Type) bool    { return false }

// Defined reports whether t is non-nil and not the Undefined sentinel. A nil
// Type (as returned by the checker's inference helpers when they fail) is
// treated the same as Undefined.
func Defined(t Type) bool {
	return t != nil && t.Defined()
}

// Equals compares two possibly-nil types for structural equality, treating
// nil the same as Undefined (unequal to everything).
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equals(b)
}
