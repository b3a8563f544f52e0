package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"eecalc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	source := path
	if source == "" {
		source = "(defaults, no config file found)"
	}

	fmt.Println("eecalc config")
	fmt.Printf("  Config:   %s\n", source)
	fmt.Printf("  Session:  %s (db %s)\n", cfg.Session.Name, cfg.Session.Path)
	fmt.Printf("  Output:   tolerance=%t variation=%t range=%t temperature=%t\n",
		cfg.Output.Tolerance, cfg.Output.Variation, cfg.Output.Range, cfg.Output.Temperature)
	fmt.Print("  Sweep:   ")
	for _, tol := range cfg.Sweep {
		fmt.Printf(" %g%%", tol*100)
	}
	fmt.Println()
	return nil
}
