package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eecalc/internal/config"
)

var scriptCmd = &cobra.Command{
	Use:   "script FILE",
	Short: "Run a calculation script",
	Long:  "Evaluates the file line by line and prints one result per expression. Stops at the first error.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if err := runScriptFile(cfg, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(1)
	}
	return nil
}

// runScriptFile evaluates the file and prints one line per expression.
// Output produced before a failing line is still printed.
func runScriptFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s := newSession(cfg)
	outputs, err := s.RunScript(string(data))
	for _, out := range outputs {
		fmt.Println(out)
	}
	return err
}
