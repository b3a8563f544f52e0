package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"eecalc/internal/adapters/bbolt"
	"eecalc/internal/domain/format"
)

var (
	varsSessionName string
	varsClear       bool
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List or clear saved session variables",
	RunE:  runVars,
}

func init() {
	varsCmd.Flags().StringVar(&varsSessionName, "session", "", "named variable session (default from config)")
	varsCmd.Flags().BoolVar(&varsClear, "clear", false, "delete all variables in the session")
}

func runVars(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	sessionName := cfg.Session.Name
	if varsSessionName != "" {
		sessionName = varsSessionName
	}

	store, err := bbolt.NewStore(cfg.Session.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if varsClear {
		if err := store.ClearVars(sessionName); err != nil {
			return err
		}
		fmt.Printf("cleared session %q\n", sessionName)
		return nil
	}

	saved, err := store.LoadVars(sessionName)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Printf("session %q is empty\n", sessionName)
		return nil
	}

	names := make([]string, 0, len(saved))
	for name := range saved {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := cfg.Output.Options()
	for _, name := range names {
		q, err := saved[name].Quantity()
		if err != nil {
			fmt.Printf("%s = <unreadable: %v>\n", name, err)
			continue
		}
		fmt.Printf("%s = %s\n", name, format.PrettyOpts(q, opts))
	}
	return nil
}
