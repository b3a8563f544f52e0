// Package format renders quantities as human-readable, SI-prefixed text,
// e.g. "12.0µA ± 5.0% (± 600.0nA) [11.4000 .. 12.6000]µA".
//
// It consumes only the public read surface of a quantity (kind, nominal,
// min, max, tolerance, resistance metadata); the core never formats itself.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"eecalc/internal/domain/quantity"
)

// siPrefix pairs a scale factor with its SI prefix symbol.
type siPrefix struct {
	factor float64
	symbol string
}

var siPrefixes = []siPrefix{
	{1e-12, "p"},
	{1e-9, "n"},
	{1e-6, "µ"},
	{1e-3, "m"},
	{1, ""},
	{1e3, "k"},
	{1e6, "M"},
	{1e9, "G"},
	{1e12, "T"},
}

// Split returns the scale factor and SI prefix for a magnitude, so that
// value/factor lands in [1, 1000). Values below the pico range clamp to "p",
// values at or above the tera range clamp to "T"; zero has no prefix.
func Split(value float64) (float64, string) {
	av := math.Abs(value)
	if av == 0 {
		return 1, ""
	}
	for i := 0; i < len(siPrefixes)-1; i++ {
		if av >= siPrefixes[i].factor && av < siPrefixes[i+1].factor {
			return siPrefixes[i].factor, siPrefixes[i].symbol
		}
	}
	if av < siPrefixes[0].factor {
		return siPrefixes[0].factor, siPrefixes[0].symbol
	}
	last := siPrefixes[len(siPrefixes)-1]
	return last.factor, last.symbol
}

// Options selects which parts of the rendering to emit.
type Options struct {
	Value       bool // the prefixed nominal magnitude, e.g. "1.0kΩ"
	Tolerance   bool // "± 1.0%"
	Variation   bool // absolute half-width, e.g. "(± 10.0Ω)"
	Range       bool // "[0.9900 .. 1.0100]kΩ"
	Temperature bool // resistance anchor, e.g. "@ 20°C α=200ppm"
}

// DefaultOptions enables every part.
func DefaultOptions() Options {
	return Options{Value: true, Tolerance: true, Variation: true, Range: true, Temperature: true}
}

// Pretty renders a quantity with all parts enabled.
func Pretty(q quantity.Quantity) string {
	return PrettyOpts(q, DefaultOptions())
}

// PrettyOpts renders a quantity. Tolerance, variation and range only appear
// for uncertain quantities; dimensionless factors are printed as plain
// numbers without prefix, unit, or the absolute-variation part.
func PrettyOpts(q quantity.Quantity, o Options) string {
	factor, prefix := 1.0, ""
	if q.Kind() != quantity.Dimensionless {
		factor, prefix = Split(q.Nominal())
	}
	unit := q.Kind().Unit()

	var parts []string

	if o.Value {
		parts = append(parts, decimal(q.Nominal()/factor)+prefix+unit)
	}

	if o.Tolerance && !q.Exact() {
		parts = append(parts, fmt.Sprintf("± %s%%", decimal(q.Tolerance()*100)))

		if o.Variation && q.Kind() != quantity.Dimensionless {
			vFactor, vPrefix := Split(q.HalfWidth())
			parts = append(parts, fmt.Sprintf("(± %s%s%s)", decimal(math.Abs(q.HalfWidth())/vFactor), vPrefix, unit))
		}

		if o.Range {
			lo, hi := q.Min()/factor, q.Max()/factor
			parts = append(parts, fmt.Sprintf("[%.4f .. %.4f]%s%s", lo, hi, prefix, unit))
		}
	}

	if o.Temperature && q.Kind() == quantity.Resistance {
		parts = append(parts, temperaturePart(q))
	}

	return strings.Join(parts, " ")
}

func temperaturePart(q quantity.Quantity) string {
	label := "@ mixed temp."
	if temp, known := q.Temperature(); known {
		label = fmt.Sprintf("@ %s°C", strconv.FormatFloat(temp, 'f', -1, 64))
	}
	if alpha, ok := q.AlphaPpm(); ok {
		label += fmt.Sprintf(" α=%sppm", strconv.FormatFloat(alpha, 'f', -1, 64))
	}
	return label
}

// decimal formats a value rounded to two decimals, always keeping at least
// one fractional digit ("3" renders as "3.0").
func decimal(v float64) string {
	s := strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
