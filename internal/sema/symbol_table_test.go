package sema_test

import (
	"testing"

	"github.com/cwbudde/tensorc/internal/ir"
	"github.com/cwbudde/tensorc/internal/sema"
)

func TestSymbolTableShadowing(t *testing.T) {
	st := sema.NewSymbolTable()
	st.Define("x", ir.Int, sema.ReadWrite)

	st.Scope()
	st.Define("x", ir.Float, sema.Read)
	sym, ok := st.Lookup("x")
	if !ok || !ir.Equals(sym.Type, ir.Float) {
		t.Fatalf("expected inner binding to shadow, got %+v", sym)
	}
	st.Unscope()

	sym, ok = st.Lookup("x")
	if !ok || !ir.Equals(sym.Type, ir.Int) {
		t.Fatalf("expected outer binding restored after Unscope, got %+v", sym)
	}
}

func TestSymbolTableHasSymbolLocalOnly(t *testing.T) {
	st := sema.NewSymbolTable()
	st.Define("g", ir.Int, sema.ReadWrite)
	st.Scope()
	defer st.Unscope()

	if st.HasSymbol("g", true) {
		t.Fatal("expected HasSymbol(localOnly=true) to miss an outer-scope binding")
	}
	if !st.HasSymbol("g", false) {
		t.Fatal("expected HasSymbol(localOnly=false) to find an outer-scope binding")
	}
}

func TestSymbolTableUnscopePanicsOnGlobalScope(t *testing.T) {
	st := sema.NewSymbolTable()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Unscope on the last remaining scope to panic")
		}
	}()
	st.Unscope()
}

func TestSymbolTableDepth(t *testing.T) {
	st := sema.NewSymbolTable()
	if st.Depth() != 1 {
		t.Fatalf("expected depth 1 for a fresh table, got %d", st.Depth())
	}
	st.Scope()
	st.Scope()
	if st.Depth() != 3 {
		t.Fatalf("expected depth 3 after two Scope calls, got %d", st.Depth())
	}
	st.Unscope()
	st.Unscope()
	if st.Depth() != 1 {
		t.Fatalf("expected depth 1 after unwinding, got %d", st.Depth())
	}
}

func TestContextRejectsDuplicateRegistration(t *testing.T) {
	ctx := sema.NewContext()
	el := &ir.Element{Name: "Point"}

	if !ctx.AddElementType("Point", el) {
		t.Fatal("expected first registration to succeed")
	}
	if ctx.AddElementType("Point", el) {
		t.Fatal("expected duplicate registration to fail")
	}

	sig := &sema.FuncSig{Name: "f", Args: []ir.Type{ir.Int}, Results: []ir.Type{ir.Int}}
	if !ctx.AddFunction("f", sig) {
		t.Fatal("expected first function registration to succeed")
	}
	if ctx.AddFunction("f", sig) {
		t.Fatal("expected duplicate function registration to fail")
	}
}
