package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cwbudde/tensorc/internal/ir"
	"github.com/cwbudde/tensorc/internal/sema"
)

// contextSummary is the post-check snapshot of a sema.Context's populated
// registries, rendered to stdout by `tensorc check` in text or JSON form
// (SPEC_FULL.md's CLI driver section).
type contextSummary struct {
	Elements  []string         `json:"elements"`
	Functions []funcSigSummary `json:"functions"`
	Globals   []globalSummary  `json:"globals"`
}

type funcSigSummary struct {
	Name    string   `json:"name"`
	Args    []string `json:"args"`
	Results []string `json:"results"`
}

type globalSummary struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// summarizeContext walks a Context's two global registries and its outer
// symbol scope; all three lists are sorted by name so the output is
// deterministic across runs.
func summarizeContext(ctx *sema.Context) contextSummary {
	var s contextSummary

	for name := range ctx.Elements {
		s.Elements = append(s.Elements, name)
	}
	sort.Strings(s.Elements)

	for name, sig := range ctx.Functions {
		fs := funcSigSummary{Name: name}
		for _, a := range sig.Args {
			fs.Args = append(fs.Args, typeString(a))
		}
		for _, r := range sig.Results {
			fs.Results = append(fs.Results, typeString(r))
		}
		s.Functions = append(s.Functions, fs)
	}
	sort.Slice(s.Functions, func(i, j int) bool { return s.Functions[i].Name < s.Functions[j].Name })

	for name, sym := range ctx.Symbols.Globals() {
		s.Globals = append(s.Globals, globalSummary{Name: name, Type: typeString(sym.Type)})
	}
	sort.Slice(s.Globals, func(i, j int) bool { return s.Globals[i].Name < s.Globals[j].Name })

	return s
}

func typeString(t ir.Type) string {
	if t == nil {
		return "undefined"
	}
	return t.String()
}

func (s contextSummary) writeText(w io.Writer) {
	fmt.Fprintf(w, "elements: %d\n", len(s.Elements))
	for _, name := range s.Elements {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "functions: %d\n", len(s.Functions))
	for _, f := range s.Functions {
		fmt.Fprintf(w, "  %s(%v) %v\n", f.Name, f.Args, f.Results)
	}
	fmt.Fprintf(w, "globals: %d\n", len(s.Globals))
	for _, g := range s.Globals {
		fmt.Fprintf(w, "  %s: %s\n", g.Name, g.Type)
	}
}

func (s contextSummary) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
