package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"eecalc/internal/config"
	"eecalc/internal/domain/expr"
)

var rootCmd = &cobra.Command{
	Use:   "eecalc",
	Short: "eecalc — electrical quantities with tolerances",
	Long:  "Worst-case tolerance arithmetic for voltages, currents, resistors, and friends.",
}

// loadConfig resolves and loads the active configuration.
func loadConfig() *config.Config {
	cfg, _, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newSession builds an evaluation session with the configured output options.
func newSession(cfg *config.Config) *expr.Session {
	s := expr.NewSession()
	s.SetOptions(cfg.Output.Options())
	return s
}

// printEvalError renders a parse error with a caret under the offending
// position, or the plain error otherwise.
func printEvalError(line string, err error) {
	if perr, ok := err.(*expr.ParseError); ok {
		fmt.Fprintf(os.Stderr, "  %s\n", line)
		fmt.Fprintf(os.Stderr, "  %s^ %s\n", strings.Repeat(" ", perr.Pos), perr.Msg)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(sensCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(configCmd)
}
