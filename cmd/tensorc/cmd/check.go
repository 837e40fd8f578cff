package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/tensorc/internal/diag"
	"github.com/cwbudde/tensorc/internal/hirbuild"
	"github.com/cwbudde/tensorc/internal/sema"
	"github.com/spf13/cobra"
)

var checkFormat string // --format: text (default) or json

var checkCmd = &cobra.Command{
	Use:   "check [file.yaml]",
	Short: "Type-check a YAML HIR fixture and report diagnostics",
	Long: `check loads a program described as a YAML HIR fixture, runs the
semantic analyzer over it, prints every diagnostic found (source-context
formatted) to stderr, and prints a summary of the populated program
context to stdout.

Examples:
  tensorc check program.yaml
  tensorc check --format json program.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "context summary format: text or json")
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]

	if checkFormat != "text" && checkFormat != "json" {
		return fmt.Errorf("unknown format %q (use text or json)", checkFormat)
	}

	log.Debugf("loading HIR fixture %s", filename)
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	prog, err := hirbuild.Parse(source)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}

	sink := diag.NewCollector()
	ctx := sema.NewContext()
	checker := sema.NewChecker(ctx, sink)
	checker.Check(prog)

	if sink.Len() > 0 {
		fmt.Fprintln(os.Stderr, diag.FormatAllWithSource(sink, string(source)))
	}

	summary := summarizeContext(ctx)
	switch checkFormat {
	case "json":
		if err := summary.writeJSON(os.Stdout); err != nil {
			return fmt.Errorf("failed to render context summary: %w", err)
		}
	default:
		summary.writeText(os.Stdout)
	}

	if sink.Len() > 0 {
		return fmt.Errorf("%d diagnostic(s) reported", sink.Len())
	}
	return nil
}
