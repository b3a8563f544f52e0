package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"eecalc/internal/domain/sensitivity"
)

var sensTolerances []float64

var sensCmd = &cobra.Command{
	Use:   "sens FILE",
	Short: "Sweep input tolerances and report the result tolerance",
	Long: "Re-runs the script once per variable and sweep step, replacing that variable's\n" +
		"tolerance, and reports the tolerance of the final expression.",
	Args: cobra.ExactArgs(1),
	RunE: runSens,
}

func init() {
	sensCmd.Flags().Float64SliceVar(&sensTolerances, "tolerances", nil, "sweep steps in percent (e.g. 0.1,1,5)")
}

func runSens(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	sweep := cfg.Sweep
	if len(sensTolerances) > 0 {
		sweep = make([]float64, len(sensTolerances))
		for i, pct := range sensTolerances {
			sweep[i] = pct / 100
		}
	}
	if len(sweep) == 0 {
		sweep = sensitivity.DefaultSweep
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	report, err := sensitivity.Analyze(string(data), sweep)
	if err != nil {
		return err
	}

	fmt.Printf("sensitivity of: %s\n\n", report.Target)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "input tol")
	for _, v := range report.Variables {
		fmt.Fprintf(w, "\t%s", v.Name)
	}
	fmt.Fprintln(w)
	for i, tol := range report.Sweep {
		fmt.Fprintf(w, "%.2f%%", tol*100)
		for _, v := range report.Variables {
			fmt.Fprintf(w, "\t%.3f%%", v.ResultTolerances[i]*100)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
