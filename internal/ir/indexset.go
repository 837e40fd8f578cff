package ir

import "strconv"

// IndexSetVariant discriminates the three IndexSet forms (spec.md §3).
type IndexSetVariant int

const (
	// IndexSetRange is a statically-known range of length N.
	IndexSetRange IndexSetVariant = iota
	// IndexSetNamed references a named set symbol.
	IndexSetNamed
	// IndexSetDynamic is the wildcard `*`.
	IndexSetDynamic
)

// IndexSet is the domain of one tensor axis: a range, a named set, or the
// dynamic wildcard.
type IndexSet struct {
	Variant IndexSetVariant
	// Length is meaningful only when Variant == IndexSetRange.
	Length int
	// Name and Set are meaningful only when Variant == IndexSetNamed. Name
	// is kept for diagnostics even though Set carries the resolved type.
	Name string
	Set  *Set
}

// Range constructs a statically-known range index set of length n.
func Range(n int) IndexSet {
	return IndexSet{Variant: IndexSetRange, Length: n}
}

// Named constructs an index set referencing a named set symbol.
func Named(name string, set *Set) IndexSet {
	return IndexSet{Variant: IndexSetNamed, Name: name, Set: set}
}

// Dynamic constructs the `*` wildcard index set.
func Dynamic() IndexSet {
	return IndexSet{Variant: IndexSetDynamic}
}

func (is IndexSet) String() string {
	switch is.Variant {
	case IndexSetRange:
		return strconv.Itoa(is.Length)
	case IndexSetNamed:
		return is.Name
	default:
		return "*"
	}
}

// Equals implements structural equality between index sets. Two dynamic
// index sets are always equal to each other (both are "don't know yet");
// two named index sets are equal iff their resolved sets are structurally
// equal (spec.md §3: endpoint/dimension references resolve through set
// structural equality, not symbol identity).
func (is IndexSet) Equals(other IndexSet) bool {
	if is.Variant != other.Variant {
		return false
	}
	switch is.Variant {
	case IndexSetRange:
		return is.Length == other.Length
	case IndexSetNamed:
		if is.Set == nil || other.Set == nil {
			return is.Name == other.Name
		}
		return is.Set.Equals(other.Set)
	default: // IndexSetDynamic
		return true
	}
}
