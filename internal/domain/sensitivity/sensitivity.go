// Package sensitivity sweeps the tolerances of a calculation's inputs to
// show which one dominates the result's uncertainty.
//
// The input is a calculator script: its assignments define the variables,
// and its last bare expression is the calculation under analysis. For each
// variable, the analysis re-evaluates that expression with the variable's
// tolerance replaced by each value of a sweep list while every other
// variable keeps its scripted tolerance.
package sensitivity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"eecalc/internal/domain/expr"
	"eecalc/internal/domain/quantity"
)

// DefaultSweep is the tolerance sweep used when none is given: 0.1% to 10%.
var DefaultSweep = []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1}

// VariableResult holds the result tolerances for one swept variable, one
// entry per sweep tolerance.
type VariableResult struct {
	Name             string
	ResultTolerances []float64
}

// Report is the outcome of a sweep: for every variable of the script, the
// tolerance of the calculation result at each sweep tolerance.
type Report struct {
	Target    string // the analyzed expression (last bare line of the script)
	Sweep     []float64
	Variables []VariableResult
}

// Analyze runs the sweep over a script. The sweep slice defaults to
// DefaultSweep when empty.
func Analyze(script string, sweep []float64) (*Report, error) {
	if len(sweep) == 0 {
		sweep = DefaultSweep
	}

	base := expr.NewSession()
	var target *expr.Line
	var targetText string

	for _, raw := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		line, err := expr.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", trimmed, err)
		}
		if _, err := base.Run(line); err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", trimmed, err)
		}
		if line.Assign == "" {
			target = line
			targetText = trimmed
		}
	}
	if target == nil {
		return nil, errors.New("script has no expression to analyze")
	}

	vars := base.Vars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &Report{Target: targetText, Sweep: sweep}

	for _, name := range names {
		result := VariableResult{Name: name}
		for _, tol := range sweep {
			replaced, err := withTolerance(vars[name], tol)
			if err != nil {
				return nil, fmt.Errorf("sweep %s at %g: %w", name, tol, err)
			}

			run := expr.NewSession()
			for v, q := range vars {
				run.Set(v, q)
			}
			run.Set(name, replaced)

			out, err := run.Run(target)
			if err != nil {
				return nil, fmt.Errorf("sweep %s at %g: %w", name, tol, err)
			}
			result.ResultTolerances = append(result.ResultTolerances, out.Tolerance())
		}
		report.Variables = append(report.Variables, result)
	}

	return report, nil
}

// withTolerance rebuilds a variable's quantity around the same nominal value
// with a different tolerance fraction. Resistance metadata is preserved.
func withTolerance(q quantity.Quantity, tol float64) (quantity.Quantity, error) {
	if alpha, ok := q.AlphaPpm(); ok {
		out, err := quantity.NewResistanceAlpha(q.Nominal(), tol, alpha)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return reanchor(out, q)
	}
	out, err := quantity.New(q.Kind(), q.Nominal(), tol)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return reanchor(out, q)
}

func reanchor(out, original quantity.Quantity) (quantity.Quantity, error) {
	if out.Kind() != quantity.Resistance {
		return out, nil
	}
	temp, known := original.Temperature()
	var tempPtr *float64
	if known {
		tempPtr = &temp
	}
	var alphaPtr *float64
	if alpha, ok := original.AlphaPpm(); ok {
		alphaPtr = &alpha
	}
	return quantity.Restore(quantity.Resistance, out.Nominal(), out.Min(), out.Max(), tempPtr, alphaPtr), nil
}
