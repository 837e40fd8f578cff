// Package hir defines the high-level syntax tree consumed by the type
// checker (internal/sema). Parsing HIR from source text is out of scope
// (spec.md §1); nodes are ordinary Go values that a builder — in this repo,
// internal/hirbuild's YAML loader — constructs directly.
//
// Every node is a sum-type member of Node, dispatched with a type switch
// rather than double-dispatch visitation: the design notes call for
// replacing polymorphic visitor dispatch with pattern matching over a
// discriminated variant tree, and Go's type switch is that pattern match.
package hir

import "github.com/cwbudde/tensorc/internal/diag"

// Node is the common interface of every HIR tree member. Span locates the
// node in source for diagnostics; ID is a builder-assigned identity used to
// key the checker's per-expression side-map (spec.md §6) — nodes are plain
// values, not pointers, so identity can't ride on the Go pointer itself.
type Node interface {
	Span() diag.Span
	ID() int
}

// Base embeds in every concrete node to supply Span() and ID() without
// repeating field accessors on each type.
type Base struct {
	Sp   diag.Span
	Seq  int
}

func (b Base) Span() diag.Span { return b.Sp }
func (b Base) ID() int         { return b.Seq }

// ---------------------------------------------------------------------------
// Index sets and type expressions (§4.6.1)
// ---------------------------------------------------------------------------

// IndexSetExpr is the HIR form of a tensor axis or endpoint domain.
type IndexSetExpr interface {
	Node
	isIndexSetExpr()
}

type RangeIndexSet struct {
	Base
	N int
}

type SetIndexSet struct {
	Base
	Name string
}

type DynamicIndexSet struct {
	Base
}

func (RangeIndexSet) isIndexSetExpr()   {}
func (SetIndexSet) isIndexSetExpr()     {}
func (DynamicIndexSet) isIndexSetExpr() {}

// TypeExpr is the HIR form of any type annotation: element types, set
// types, tuple types, scalar types, and N-dimensional tensor types.
type TypeExpr interface {
	Node
	isTypeExpr()
}

type ElementTypeExpr struct {
	Base
	Name string
}

// Endpoint is one entry of a SetTypeExpr's endpoint list: a reference to
// another set, by name.
type Endpoint struct {
	Base
	SetName string
}

type SetTypeExpr struct {
	Base
	Element   ElementTypeExpr
	Endpoints []Endpoint
}

type TupleTypeExpr struct {
	Base
	Element ElementTypeExpr
	Length  int
}

// ScalarKind names one of the three built-in scalar type keywords.
type ScalarKind int

const (
	ScalarInt ScalarKind = iota
	ScalarFloat
	ScalarBool
)

type ScalarTypeExpr struct {
	Base
	Kind ScalarKind
}

// NDTensorTypeExpr is tensor[idx1,...,idxN](block) with an optional trailing
// column-vector marker, e.g. tensor[n](float)'.
type NDTensorTypeExpr struct {
	Base
	IndexSets    []IndexSetExpr
	Block        TypeExpr
	ColumnVector bool
}

func (ElementTypeExpr) isTypeExpr()  {}
func (SetTypeExpr) isTypeExpr()      {}
func (TupleTypeExpr) isTypeExpr()    {}
func (ScalarTypeExpr) isTypeExpr()   {}
func (NDTensorTypeExpr) isTypeExpr() {}

// ---------------------------------------------------------------------------
// Declarations (§4.6.4)
// ---------------------------------------------------------------------------

// Field is one member of an ElementTypeDecl.
type Field struct {
	Base
	Name string
	Type TypeExpr
}

type ElementTypeDecl struct {
	Base
	Name   string
	Fields []Field
}

// IdentDecl names a variable alongside its declared type; shared shape for
// extern declarations, var/const declarations, and function arguments and
// results.
type IdentDecl struct {
	Base
	Name  string
	Type  TypeExpr
	Inout bool
}

type ExternDecl struct {
	Base
	Ident IdentDecl
}

type FuncDecl struct {
	Base
	Name    string
	Args    []IdentDecl
	Results []IdentDecl
	Body    []Stmt
}

type VarDecl struct {
	Base
	Ident IdentDecl
	Init  Expr // nil if no initializer
}

type ConstDecl struct {
	Base
	Ident IdentDecl
	Init  Expr
}

// ProcDecl is a top-level procedure (spec's "main" etc.): a body with no
// arguments or results, unlike FuncDecl which is the map-reduce assembly
// target.
type ProcDecl struct {
	Base
	Name string
	Body []Stmt
}

// Program is the root HIR node: the full compilation unit.
type Program struct {
	Base
	Elements  []ElementTypeDecl
	Externs   []ExternDecl
	Functions []FuncDecl
	Procs     []ProcDecl
}

// ---------------------------------------------------------------------------
// Statements (§4.6.3)
// ---------------------------------------------------------------------------

type Stmt interface {
	Node
	isStmt()
}

type AssignStmt struct {
	Base
	LHS  []Expr
	RHS  Expr
}

type WhileStmt struct {
	Base
	Cond Expr
	Body []Stmt
}

type IfStmt struct {
	Base
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else branch
}

// RangeDomain is a for-loop's `lo .. hi` bound pair.
type RangeDomain struct {
	Base
	Lo Expr
	Hi Expr
}

type ForStmt struct {
	Base
	Var    string
	Domain RangeDomain
	Body   []Stmt
}

type PrintStmt struct {
	Base
	Arg Expr
}

func (VarDecl) isStmt()    {}
func (ConstDecl) isStmt()  {}
func (AssignStmt) isStmt() {}
func (WhileStmt) isStmt()  {}
func (IfStmt) isStmt()     {}
func (ForStmt) isStmt()    {}
func (PrintStmt) isStmt()  {}

// ---------------------------------------------------------------------------
// Expressions (§4.6.2)
// ---------------------------------------------------------------------------

type Expr interface {
	Node
	isExpr()
}

// BinOp names the kind of a binary arithmetic/comparison/boolean node.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpElwiseMul
	OpElwiseDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpXor
)

type BinaryExpr struct {
	Base
	Op    BinOp
	Left  Expr
	Right Expr
}

type NotExpr struct {
	Base
	Operand Expr
}

type NegExpr struct {
	Base
	Operand Expr
}

type TransposeExpr struct {
	Base
	Operand Expr
}

// Index is one argument of a TensorReadExpr: either a slice marker (`:`) or
// an expression.
type Index struct {
	Slice bool
	Expr  Expr
}

type TensorReadExpr struct {
	Base
	Tensor  Expr
	Indices []Index
}

type TupleReadExpr struct {
	Base
	Tuple Expr
	Index Expr
}

type FieldReadExpr struct {
	Base
	Operand Expr
	Field   string
}

type VarExpr struct {
	Base
	Name string
}

type CallExpr struct {
	Base
	Func string
	Args []Expr
}

// MapExpr is `map F to T [with E] reduce +`.
type MapExpr struct {
	Base
	Func       string
	Target     string
	PartialArg []Expr // partial actual arguments supplied before synthesis
}

// Literal forms.

type IntLit struct {
	Base
	Value int64
}

type FloatLit struct {
	Base
	Value float64
}

type BoolLit struct {
	Base
	Value bool
}

// DenseLit is a nested bracketed literal, e.g. [[1.0,0.0],[0.0,1.0]]. Leaf
// entries are scalar literal expressions; Rows is empty for a leaf scalar
// literal node (use IntLit/FloatLit instead at that point) — DenseLit always
// denotes at least a 1-vector.
type DenseLit struct {
	Base
	Rows []Expr
}

func (BinaryExpr) isExpr()     {}
func (NotExpr) isExpr()        {}
func (NegExpr) isExpr()        {}
func (TransposeExpr) isExpr()  {}
func (TensorReadExpr) isExpr() {}
func (TupleReadExpr) isExpr()  {}
func (FieldReadExpr) isExpr()  {}
func (VarExpr) isExpr()        {}
func (CallExpr) isExpr()       {}
func (MapExpr) isExpr()        {}
func (IntLit) isExpr()         {}
func (FloatLit) isExpr()       {}
func (BoolLit) isExpr()        {}
func (DenseLit) isExpr()       {}
