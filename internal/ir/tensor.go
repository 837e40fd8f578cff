package ir

// IndexDomain is one axis's full index structure: an ordered list of
// IndexSets. The first element is the "outer" dimension; the remainder
// describe the block-nesting produced when a tensor-typed tensor is
// constructed (spec.md §3: "Each index domain is an ordered list of index
// sets"). A plain, unblocked axis is a one-element IndexDomain. A tensor's
// Order is the number of Domains entries (axes), not the total number of
// IndexSets across all of them — nesting a block under an axis deepens that
// axis's own domain, it never adds a new axis.
type IndexDomain []IndexSet

// Outer is the axis's own dimension — the index set actual tensor reads
// index against.
func (d IndexDomain) Outer() IndexSet { return d[0] }

// Inner is the nested block structure left after consuming the outer
// dimension, itself a (possibly empty) IndexDomain.
func (d IndexDomain) Inner() IndexDomain { return d[1:] }

func (d IndexDomain) String() string {
	str := ""
	for i, is := range d {
		if i > 0 {
			str += ":"
		}
		str += is.String()
	}
	return str
}

// Equals compares two index domains level by level, including nested block
// structure.
func (d IndexDomain) Equals(o IndexDomain) bool {
	if len(d) != len(o) {
		return false
	}
	for i, is := range d {
		if !is.Equals(o[i]) {
			return false
		}
	}
	return true
}

// Tensor is an N-dimensional array of int/float/bool components, indexed by
// one IndexDomain per axis. Order() is len(Domains); a 0-order tensor is a
// boxed scalar and compares equal to the matching Scalar (see
// Scalar.Equals). ColumnVector distinguishes an order-1 tensor written as a
// column from one written as a row — they are assignment-incompatible even
// though both have a single domain (spec.md §4.2).
type Tensor struct {
	Component    Kind
	Domains      []IndexDomain
	ColumnVector bool
}

func (t *Tensor) Kind() Kind    { return KindTensor }
func (t *Tensor) Defined() bool { return true }

// Order is the tensor's rank: the number of index-set axes.
func (t *Tensor) Order() int { return len(t.Domains) }

func (t *Tensor) String() string {
	str := t.Component.String()
	if len(t.Domains) == 0 {
		return str
	}
	str += "["
	for i, d := range t.Domains {
		if i > 0 {
			str += ","
		}
		str += d.String()
	}
	str += "]"
	if t.ColumnVector {
		str += "'"
	}
	return str
}

// Equals implements §4.2's tensor equality: same component kind, same
// ordered domains, same column-vector flag. An order-0 Tensor also equals
// the Scalar of its component kind; Scalar.Equals applies the same rule
// from the other side, so the comparison is symmetric.
func (t *Tensor) Equals(other Type) bool {
	switch o := other.(type) {
	case *Tensor:
		if t.Component != o.Component {
			return false
		}
		if t.ColumnVector != o.ColumnVector {
			return false
		}
		if len(t.Domains) != len(o.Domains) {
			return false
		}
		for i, d := range t.Domains {
			if !d.Equals(o.Domains[i]) {
				return false
			}
		}
		return true
	case *Scalar:
		return t.Order() == 0 && t.Component == o.kind
	default:
		return false
	}
}

// NewBlockTensor builds the tensor type produced by tensor[idxSets...](block)
// (spec.md §4.6.1's NDTensorType rule, invariant #4): each leading IndexSet
// becomes one axis of the result, and block's structure nests *inside* that
// axis's own domain rather than appending a new axis. If block has order 0
// (a scalar block), axis i's domain is simply [idxSets[i]]. Otherwise
// block's order must equal len(leading), and axis i's domain becomes
// [idxSets[i], block.Domains[i]...] — the outer index set followed by
// whatever nesting block already carried on that same axis. Order is always
// len(leading), never leading+block's order: nesting deepens an axis's
// domain, it does not add axes.
func NewBlockTensor(leading []IndexSet, block *Tensor) (*Tensor, bool) {
	if block.Order() == 0 {
		domains := make([]IndexDomain, len(leading))
		for i, s := range leading {
			domains[i] = IndexDomain{s}
		}
		return &Tensor{Component: block.Component, Domains: domains}, true
	}
	if block.Order() != len(leading) {
		return nil, false
	}
	domains := make([]IndexDomain, len(leading))
	for i, s := range leading {
		d := make(IndexDomain, 0, 1+len(block.Domains[i]))
		d = append(d, s)
		d = append(d, block.Domains[i]...)
		domains[i] = d
	}
	return &Tensor{Component: block.Component, Domains: domains, ColumnVector: block.ColumnVector}, true
}
