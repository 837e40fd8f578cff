// Package hirbuild constructs internal/hir trees from a YAML fixture
// format. It stands in for the out-of-scope lexer/parser (spec.md §1 treats
// lexing and parsing into HIR as an external collaborator): test fixtures
// and the CLI both describe a program as YAML, and this package builds the
// HIR tree the checker actually consumes.
package hirbuild

// Program is the YAML root: a compilation unit's elements, externs,
// functions, and procedures, mirroring hir.Program one level down in a
// serialization-friendly shape.
type Program struct {
	Elements  []ElementDecl `yaml:"elements"`
	Externs   []ExternDecl  `yaml:"externs"`
	Functions []FuncDecl    `yaml:"functions"`
	Procs     []ProcDecl    `yaml:"procs"`
}

type ElementDecl struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

type Field struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`
}

// Type is the YAML form of a type expression. Exactly one of its pointer
// fields is set; which one discriminates the variant, matching the node
// list of spec.md §4.5 one-to-one.
type Type struct {
	Scalar *string    `yaml:"scalar,omitempty"`
	Elem   *string    `yaml:"elem,omitempty"`
	Set    *SetType   `yaml:"set,omitempty"`
	Tuple  *TupleType `yaml:"tuple,omitempty"`
	Tensor *TensorType `yaml:"tensor,omitempty"`
}

type SetType struct {
	Elem      string   `yaml:"elem"`
	Endpoints []string `yaml:"endpoints,omitempty"`
}

type TupleType struct {
	Elem   string `yaml:"elem"`
	Length int    `yaml:"length"`
}

// IndexSet is the YAML form of a HIR index set expression: exactly one of
// Range, Name, or Dynamic is set.
type IndexSet struct {
	Range   *int    `yaml:"range,omitempty"`
	Name    *string `yaml:"name,omitempty"`
	Dynamic bool    `yaml:"dynamic,omitempty"`
}

type TensorType struct {
	IndexSets    []IndexSet `yaml:"dims"`
	Block        *Type      `yaml:"block"`
	ColumnVector bool       `yaml:"column_vector,omitempty"`
}

type Ident struct {
	Name  string `yaml:"name"`
	Type  Type   `yaml:"type"`
	Inout bool   `yaml:"inout,omitempty"`
}

type ExternDecl struct {
	Ident Ident `yaml:"ident"`
}

type FuncDecl struct {
	Name    string  `yaml:"name"`
	Args    []Ident `yaml:"args"`
	Results []Ident `yaml:"results"`
	Body    []Stmt  `yaml:"body"`
}

type ProcDecl struct {
	Name string `yaml:"name"`
	Body []Stmt `yaml:"body"`
}
