package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a single expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := newSession(cfg)

	line := strings.Join(args, " ")
	out, ok, err := s.EvalLine(line)
	if err != nil {
		printEvalError(line, err)
		os.Exit(1)
	}
	if ok {
		fmt.Println(out)
	}
	return nil
}
