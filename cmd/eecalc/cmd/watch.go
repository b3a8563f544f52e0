package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"eecalc/internal/adapters/fsnotify"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-run a script whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	path := args[0]

	run := func(p string) {
		fmt.Printf("── %s ──\n", p)
		if err := runScriptFile(cfg, p); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p, err)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Watch(path, run); err != nil {
		return err
	}

	run(path)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nstopping watch")
	return nil
}
