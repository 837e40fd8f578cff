package hirbuild

// Expr is the YAML form of a HIR expression: exactly one field is set. The
// variant set mirrors hir.Expr's node list (spec.md §4.5) rather than
// introducing its own vocabulary, so the mapping in build.go is a straight
// one-to-one translation.
type Expr struct {
	Int   *int64  `yaml:"int,omitempty"`
	Float *float64 `yaml:"float,omitempty"`
	Bool  *bool    `yaml:"bool,omitempty"`
	Dense []Expr   `yaml:"dense,omitempty"`
	Var   *string  `yaml:"var,omitempty"`

	Not       *Expr `yaml:"not,omitempty"`
	Neg       *Expr `yaml:"neg,omitempty"`
	Transpose *Expr `yaml:"transpose,omitempty"`

	Binary *BinaryExpr `yaml:"binop,omitempty"`

	TensorRead *TensorReadExpr `yaml:"tensor_read,omitempty"`
	TupleRead  *TupleReadExpr  `yaml:"tuple_read,omitempty"`
	FieldRead  *FieldReadExpr  `yaml:"field_read,omitempty"`

	Call *CallExpr `yaml:"call,omitempty"`
	Map  *MapExpr  `yaml:"map,omitempty"`
}

type BinaryExpr struct {
	Op    string `yaml:"op"`
	Left  *Expr  `yaml:"left"`
	Right *Expr  `yaml:"right"`
}

// IndexArg is one tensor-read argument: either a slice marker or an
// expression.
type IndexArg struct {
	Slice bool  `yaml:"slice,omitempty"`
	Expr  *Expr `yaml:"expr,omitempty"`
}

type TensorReadExpr struct {
	Tensor  *Expr      `yaml:"tensor"`
	Indices []IndexArg `yaml:"indices"`
}

type TupleReadExpr struct {
	Tuple *Expr `yaml:"tuple"`
	Index *Expr `yaml:"index"`
}

type FieldReadExpr struct {
	Operand *Expr  `yaml:"operand"`
	Field   string `yaml:"field"`
}

type CallExpr struct {
	Func string `yaml:"func"`
	Args []Expr `yaml:"args"`
}

type MapExpr struct {
	Func       string `yaml:"func"`
	Target     string `yaml:"target"`
	PartialArg []Expr `yaml:"partial_args,omitempty"`
}
