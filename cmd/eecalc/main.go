// eecalc is a tolerance-aware electrical engineering calculator.
// Quantities carry worst-case bounds; arithmetic propagates them.
package main

import (
	"os"

	"eecalc/cmd/eecalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
