package hirbuild

import (
	"fmt"
	"os"

	"github.com/cwbudde/tensorc/internal/diag"
	"github.com/cwbudde/tensorc/internal/hir"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML fixture file into an HIR Program.
func Load(path string) (*hir.Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hirbuild: read %s: %w", path, err)
	}
	return Parse(content)
}

// Parse decodes YAML source into an HIR Program.
func Parse(source []byte) (*hir.Program, error) {
	var p Program
	if err := yaml.Unmarshal(source, &p); err != nil {
		return nil, fmt.Errorf("hirbuild: decode yaml: %w", err)
	}
	b := &builder{}
	return b.build(p), nil
}

// zeroSpan is used throughout the builder: the YAML fixture format does not
// carry line/column information (it is not the real lexer/parser), so every
// node built from it shares one placeholder span. A future parser plugged
// in at this boundary is expected to populate real spans instead.
var zeroSpan = diag.Span{LineBegin: 1, ColBegin: 1, LineEnd: 1, ColEnd: 1}

// builder assigns each constructed node a unique ID (hir.Node.ID) so the
// checker's per-expression side-map has a comparable key to hang off of,
// since several HIR node types embed slices and so aren't themselves
// comparable.
type builder struct {
	seq int
}

func (b *builder) base() hir.Base {
	b.seq++
	return hir.Base{Sp: zeroSpan, Seq: b.seq}
}

func (b *builder) build(p Program) *hir.Program {
	prog := &hir.Program{}
	for _, e := range p.Elements {
		prog.Elements = append(prog.Elements, b.buildElementDecl(e))
	}
	for _, e := range p.Externs {
		prog.Externs = append(prog.Externs, b.buildExternDecl(e))
	}
	for _, f := range p.Functions {
		prog.Functions = append(prog.Functions, b.buildFuncDecl(f))
	}
	for _, pr := range p.Procs {
		prog.Procs = append(prog.Procs, b.buildProcDecl(pr))
	}
	return prog
}

func (b *builder) buildElementDecl(e ElementDecl) hir.ElementTypeDecl {
	d := hir.ElementTypeDecl{Base: b.base(), Name: e.Name}
	for _, f := range e.Fields {
		d.Fields = append(d.Fields, hir.Field{Base: b.base(), Name: f.Name, Type: b.buildType(f.Type)})
	}
	return d
}

func (b *builder) buildIdent(id Ident) hir.IdentDecl {
	return hir.IdentDecl{Base: b.base(), Name: id.Name, Type: b.buildType(id.Type), Inout: id.Inout}
}

func (b *builder) buildExternDecl(e ExternDecl) hir.ExternDecl {
	return hir.ExternDecl{Base: b.base(), Ident: b.buildIdent(e.Ident)}
}

func (b *builder) buildFuncDecl(f FuncDecl) hir.FuncDecl {
	d := hir.FuncDecl{Base: b.base(), Name: f.Name}
	for _, a := range f.Args {
		d.Args = append(d.Args, b.buildIdent(a))
	}
	for _, r := range f.Results {
		d.Results = append(d.Results, b.buildIdent(r))
	}
	for _, s := range f.Body {
		d.Body = append(d.Body, b.buildStmt(s))
	}
	return d
}

func (b *builder) buildProcDecl(p ProcDecl) hir.ProcDecl {
	d := hir.ProcDecl{Base: b.base(), Name: p.Name}
	for _, s := range p.Body {
		d.Body = append(d.Body, b.buildStmt(s))
	}
	return d
}

func (b *builder) buildType(t Type) hir.TypeExpr {
	switch {
	case t.Scalar != nil:
		return hir.ScalarTypeExpr{Base: b.base(), Kind: scalarKind(*t.Scalar)}
	case t.Elem != nil:
		return hir.ElementTypeExpr{Base: b.base(), Name: *t.Elem}
	case t.Set != nil:
		ends := make([]hir.Endpoint, len(t.Set.Endpoints))
		for i, ep := range t.Set.Endpoints {
			ends[i] = hir.Endpoint{Base: b.base(), SetName: ep}
		}
		return hir.SetTypeExpr{
			Base:      b.base(),
			Element:   hir.ElementTypeExpr{Base: b.base(), Name: t.Set.Elem},
			Endpoints: ends,
		}
	case t.Tuple != nil:
		return hir.TupleTypeExpr{
			Base:    b.base(),
			Element: hir.ElementTypeExpr{Base: b.base(), Name: t.Tuple.Elem},
			Length:  t.Tuple.Length,
		}
	case t.Tensor != nil:
		dims := make([]hir.IndexSetExpr, len(t.Tensor.IndexSets))
		for i, is := range t.Tensor.IndexSets {
			dims[i] = b.buildIndexSet(is)
		}
		var block hir.TypeExpr
		if t.Tensor.Block != nil {
			block = b.buildType(*t.Tensor.Block)
		}
		return hir.NDTensorTypeExpr{
			Base:         b.base(),
			IndexSets:    dims,
			Block:        block,
			ColumnVector: t.Tensor.ColumnVector,
		}
	default:
		return hir.ScalarTypeExpr{Base: b.base(), Kind: hir.ScalarInt}
	}
}

func (b *builder) buildIndexSet(is IndexSet) hir.IndexSetExpr {
	switch {
	case is.Range != nil:
		return hir.RangeIndexSet{Base: b.base(), N: *is.Range}
	case is.Name != nil:
		return hir.SetIndexSet{Base: b.base(), Name: *is.Name}
	default:
		return hir.DynamicIndexSet{Base: b.base()}
	}
}

func scalarKind(name string) hir.ScalarKind {
	switch name {
	case "float":
		return hir.ScalarFloat
	case "bool":
		return hir.ScalarBool
	default:
		return hir.ScalarInt
	}
}

func (b *builder) buildStmt(s Stmt) hir.Stmt {
	switch {
	case s.VarDecl != nil:
		d := hir.VarDecl{Base: b.base(), Ident: b.buildIdent(s.VarDecl.Ident)}
		if s.VarDecl.Init != nil {
			d.Init = b.buildExpr(*s.VarDecl.Init)
		}
		return d
	case s.ConstDecl != nil:
		d := hir.ConstDecl{Base: b.base(), Ident: b.buildIdent(s.ConstDecl.Ident)}
		if s.ConstDecl.Init != nil {
			d.Init = b.buildExpr(*s.ConstDecl.Init)
		}
		return d
	case s.Assign != nil:
		lhs := make([]hir.Expr, len(s.Assign.LHS))
		for i, l := range s.Assign.LHS {
			lhs[i] = b.buildExpr(l)
		}
		return hir.AssignStmt{Base: b.base(), LHS: lhs, RHS: b.buildExpr(s.Assign.RHS)}
	case s.While != nil:
		body := make([]hir.Stmt, len(s.While.Body))
		for i, st := range s.While.Body {
			body[i] = b.buildStmt(st)
		}
		return hir.WhileStmt{Base: b.base(), Cond: b.buildExpr(s.While.Cond), Body: body}
	case s.If != nil:
		then := make([]hir.Stmt, len(s.If.Then))
		for i, st := range s.If.Then {
			then[i] = b.buildStmt(st)
		}
		var els []hir.Stmt
		if len(s.If.Else) > 0 {
			els = make([]hir.Stmt, len(s.If.Else))
			for i, st := range s.If.Else {
				els[i] = b.buildStmt(st)
			}
		}
		return hir.IfStmt{Base: b.base(), Cond: b.buildExpr(s.If.Cond), Then: then, Else: els}
	case s.For != nil:
		body := make([]hir.Stmt, len(s.For.Body))
		for i, st := range s.For.Body {
			body[i] = b.buildStmt(st)
		}
		return hir.ForStmt{
			Base: b.base(),
			Var:  s.For.Var,
			Domain: hir.RangeDomain{
				Base: b.base(),
				Lo:   b.buildExpr(s.For.Domain.Lo),
				Hi:   b.buildExpr(s.For.Domain.Hi),
			},
			Body: body,
		}
	case s.Print != nil:
		return hir.PrintStmt{Base: b.base(), Arg: b.buildExpr(*s.Print)}
	default:
		return hir.PrintStmt{Base: b.base(), Arg: hir.BoolLit{Base: b.base(), Value: true}}
	}
}

func (b *builder) buildExpr(e Expr) hir.Expr {
	switch {
	case e.Int != nil:
		return hir.IntLit{Base: b.base(), Value: *e.Int}
	case e.Float != nil:
		return hir.FloatLit{Base: b.base(), Value: *e.Float}
	case e.Bool != nil:
		return hir.BoolLit{Base: b.base(), Value: *e.Bool}
	case e.Dense != nil:
		rows := make([]hir.Expr, len(e.Dense))
		for i, r := range e.Dense {
			rows[i] = b.buildExpr(r)
		}
		return hir.DenseLit{Base: b.base(), Rows: rows}
	case e.Var != nil:
		return hir.VarExpr{Base: b.base(), Name: *e.Var}
	case e.Not != nil:
		return hir.NotExpr{Base: b.base(), Operand: b.buildExpr(*e.Not)}
	case e.Neg != nil:
		return hir.NegExpr{Base: b.base(), Operand: b.buildExpr(*e.Neg)}
	case e.Transpose != nil:
		return hir.TransposeExpr{Base: b.base(), Operand: b.buildExpr(*e.Transpose)}
	case e.Binary != nil:
		return hir.BinaryExpr{
			Base:  b.base(),
			Op:    binOp(e.Binary.Op),
			Left:  b.buildExpr(*e.Binary.Left),
			Right: b.buildExpr(*e.Binary.Right),
		}
	case e.TensorRead != nil:
		idx := make([]hir.Index, len(e.TensorRead.Indices))
		for i, a := range e.TensorRead.Indices {
			ia := hir.Index{Slice: a.Slice}
			if a.Expr != nil {
				ia.Expr = b.buildExpr(*a.Expr)
			}
			idx[i] = ia
		}
		return hir.TensorReadExpr{Base: b.base(), Tensor: b.buildExpr(*e.TensorRead.Tensor), Indices: idx}
	case e.TupleRead != nil:
		return hir.TupleReadExpr{
			Base:  b.base(),
			Tuple: b.buildExpr(*e.TupleRead.Tuple),
			Index: b.buildExpr(*e.TupleRead.Index),
		}
	case e.FieldRead != nil:
		return hir.FieldReadExpr{
			Base:    b.base(),
			Operand: b.buildExpr(*e.FieldRead.Operand),
			Field:   e.FieldRead.Field,
		}
	case e.Call != nil:
		args := make([]hir.Expr, len(e.Call.Args))
		for i, a := range e.Call.Args {
			args[i] = b.buildExpr(a)
		}
		return hir.CallExpr{Base: b.base(), Func: e.Call.Func, Args: args}
	case e.Map != nil:
		partials := make([]hir.Expr, len(e.Map.PartialArg))
		for i, a := range e.Map.PartialArg {
			partials[i] = b.buildExpr(a)
		}
		return hir.MapExpr{Base: b.base(), Func: e.Map.Func, Target: e.Map.Target, PartialArg: partials}
	default:
		return hir.BoolLit{Base: b.base(), Value: true}
	}
}

func binOp(op string) hir.BinOp {
	switch op {
	case "+":
		return hir.OpAdd
	case "-":
		return hir.OpSub
	case "*":
		return hir.OpMul
	case "/":
		return hir.OpDiv
	case ".*":
		return hir.OpElwiseMul
	case "./":
		return hir.OpElwiseDiv
	case "==":
		return hir.OpEq
	case "!=":
		return hir.OpNe
	case "<":
		return hir.OpLt
	case "<=":
		return hir.OpLe
	case ">":
		return hir.OpGt
	case ">=":
		return hir.OpGe
	case "and":
		return hir.OpAnd
	case "or":
		return hir.OpOr
	case "xor":
		return hir.OpXor
	default:
		return hir.OpAdd
	}
}
