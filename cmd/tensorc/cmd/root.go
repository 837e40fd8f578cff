package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "tensorc",
	Short: "Semantic checker for the graph/tensor assembly language",
	Long: `tensorc lowers a parsed program (HIR) into typed IR, resolving names,
checking the structural type system, and validating map-reduce assembly.

Programs are supplied as YAML HIR fixtures (see internal/hirbuild): this
binary does not lex or parse source text itself.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
