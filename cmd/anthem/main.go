// Command anthem verifies claims about answer-set programs and
// first-order theories by reducing them to TPTP proof obligations and
// discharging those with an external theorem prover (spec §6). The
// subcommand layout and global flag conventions follow the cobra
// root-command-plus-verbs pattern (see e.g. codenerd's cmd/nerd/main.go),
// adapted to this module's own verbs.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "anthem",
	Short: "verify answer-set programs and first-order theories against each other",
	Long: `anthem analyzes answer-set programs, translates them to first-order
theories, and verifies claims of equivalence between a program and a
specification by discharging the resulting TPTP proof obligations with an
external theorem prover.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace internal processing to stderr")
	rootCmd.AddCommand(analyzeCmd, translateCmd, tightenCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
