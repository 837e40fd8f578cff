package sema_test

import (
	"testing"

	"github.com/cwbudde/tensorc/internal/diag"
	"github.com/cwbudde/tensorc/internal/hirbuild"
	"github.com/cwbudde/tensorc/internal/sema"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestDiagnosticRenderingSnapshots pins the rendered text of every
// diagnostic for a handful of representative failing programs, the way the
// teacher pins interpreter output per fixture.
func TestDiagnosticRenderingSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "row_vec_times_row_vec",
			src: `
externs:
  - ident: {name: row_vec, type: {tensor: {dims: [{range: 3}], block: {scalar: float}}}}
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: x}]
          rhs: {binop: {op: "*", left: {var: row_vec}, right: {var: row_vec}}}
`,
		},
		{
			name: "undeclared_variable",
			src: `
procs:
  - name: main
    body:
      - assign:
          lhs: [{var: out}]
          rhs: {var: missing}
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := hirbuild.Parse([]byte(tc.src))
			if err != nil {
				t.Fatalf("hirbuild.Parse: %v", err)
			}
			sink := diag.NewCollector()
			sema.NewChecker(sema.NewContext(), sink).Check(prog)
			snaps.MatchSnapshot(t, diag.FormatAllWithSource(sink, tc.src))
		})
	}
}
