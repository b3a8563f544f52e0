// Package quantity models electrical quantities as immutable values carrying
// a nominal magnitude plus a worst-case tolerance interval.
//
// Arithmetic is routed through a static resolution table: an operation on two
// quantities is legal only if the (operator, kind, kind) triple is physically
// meaningful (U/R = I, I²*R = P, ...), and the result's bounds are derived by
// worst-case interval propagation under the assumption that the two operands'
// uncertainty sources are independent. Expressions that reuse one uncertain
// quantity on both sides of an operation (the classic r1/(r1+r2) mistake)
// double-count its tolerance; the fused combinators Parallel and Divider
// exist so callers never have to write such expressions.
package quantity

// Kind identifies one of the closed set of electrical quantity kinds.
// The set is fixed: arbitrary SI unit composition is out of scope.
type Kind uint8

const (
	Voltage Kind = iota
	Current
	Resistance
	Power
	Energy
	Duration
	Dimensionless
	VoltageSquared
	CurrentSquared

	kindCount
)

var kindNames = [kindCount]string{
	Voltage:        "voltage",
	Current:        "current",
	Resistance:     "resistance",
	Power:          "power",
	Energy:         "energy",
	Duration:       "time",
	Dimensionless:  "factor",
	VoltageSquared: "voltage²",
	CurrentSquared: "current²",
}

// unitSymbols maps each kind to its SI unit symbol ("" for factors).
var unitSymbols = [kindCount]string{
	Voltage:        "V",
	Current:        "A",
	Resistance:     "Ω",
	Power:          "W",
	Energy:         "J",
	Duration:       "s",
	Dimensionless:  "",
	VoltageSquared: "V²",
	CurrentSquared: "A²",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}
	return kindNames[k]
}

// Unit returns the SI unit symbol for the kind, e.g. "Ω" for Resistance.
// Dimensionless factors have no unit.
func (k Kind) Unit() string {
	if k >= kindCount {
		return ""
	}
	return unitSymbols[k]
}

// KindFromName maps a kind's name (as returned by String) back to the Kind.
// Used when rehydrating persisted quantities.
func KindFromName(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}
