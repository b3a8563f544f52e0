package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eecalc/internal/adapters/bbolt"
	"eecalc/internal/ports"
)

var (
	replSessionName string
	replNoPersist   bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive calculator shell",
	Long:  "Reads expressions line by line. Assignments persist across runs unless --no-persist is set.",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replSessionName, "session", "", "named variable session (default from config)")
	replCmd.Flags().BoolVar(&replNoPersist, "no-persist", false, "do not load or save session variables")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := newSession(cfg)

	sessionName := cfg.Session.Name
	if replSessionName != "" {
		sessionName = replSessionName
	}

	var store ports.VarStore
	if !replNoPersist {
		st, err := bbolt.NewStore(cfg.Session.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: session store unavailable: %v\n", err)
		} else {
			store = st
			defer store.Close()
			saved, err := store.LoadVars(sessionName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load session %q: %v\n", sessionName, err)
			}
			for name, sv := range saved {
				q, err := sv.Quantity()
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", name, err)
					continue
				}
				s.Set(name, q)
			}
		}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Print("» ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			break
		}
		out, ok, err := s.EvalLine(line)
		if err != nil {
			printEvalError(line, err)
			continue
		}
		if ok {
			fmt.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if store != nil {
		vars := make(map[string]ports.SavedVar)
		for name, q := range s.Vars() {
			vars[name] = ports.Snapshot(q)
		}
		if err := store.SaveVars(sessionName, vars); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}
