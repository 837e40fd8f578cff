package literal

import "github.com/cwbudde/tensorc/internal/ir"

// Tensor builds the ir.Tensor denoted by a Shape: one Range index set per
// axis, in literal (outer-to-inner) order. columnVector is only meaningful
// at rank 1, matching §4.6.2's "the transposed flag is carried through for
// rank 1 only".
func (s Shape) Tensor(columnVector bool) *ir.Tensor {
	domains := make([]ir.IndexDomain, len(s.Lengths))
	for i, n := range s.Lengths {
		domains[i] = ir.IndexDomain{ir.Range(n)}
	}
	return &ir.Tensor{
		Component:    s.Scalar,
		Domains:      domains,
		ColumnVector: columnVector && len(s.Lengths) == 1,
	}
}
