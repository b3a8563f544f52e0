package quantity

import "math"

// DefaultTemperature is the anchor temperature, in °C, assigned to every
// directly constructed resistance.
const DefaultTemperature = 20.0

// Quantity is an immutable electrical quantity: a nominal magnitude in base
// SI units plus worst-case lower/upper bounds. The canonical representation
// is (kind, nominal, min, max); the relative tolerance fraction is derived on
// read, never stored, so the two views cannot drift apart.
//
// Quantities are plain values. Operations never mutate their operands; every
// arithmetic method returns a brand-new Quantity.
type Quantity struct {
	kind    Kind
	nominal float64
	bounds  interval

	// Resistance-only metadata, never consulted by kind resolution.
	temp  temperatureAnchor
	alpha tempCoefficient
}

// temperatureAnchor is a resistance's anchor temperature in °C. Combining
// resistors anchored at different temperatures leaves the result without a
// single defined anchor ("mixed").
type temperatureAnchor struct {
	celsius float64
	known   bool
}

// tempCoefficient is an optional linear temperature coefficient in ppm/°C.
type tempCoefficient struct {
	ppm float64
	set bool
}

// New constructs a quantity of the given kind from a nominal value and a
// symmetric relative tolerance fraction (0.05 means ±5%). The fraction is
// taken as given; 0 and values above 1 are legal, but a negative fraction
// is rejected with ErrInvalidTolerance.
func New(kind Kind, nominal, tolerance float64) (Quantity, error) {
	if tolerance < 0 {
		return Quantity{}, ErrInvalidTolerance
	}

	// Order the limits explicitly so negative nominals work.
	a := nominal * (1 - tolerance)
	b := nominal * (1 + tolerance)

	q := Quantity{
		kind:    kind,
		nominal: nominal,
		bounds:  interval{math.Min(a, b), math.Max(a, b)},
	}
	if kind == Resistance {
		q.temp = temperatureAnchor{DefaultTemperature, true}
	}
	return q, nil
}

// FromMinMax constructs a quantity of the given kind directly from explicit
// bounds, with the nominal value at the interval midpoint. The bounds are
// stored exactly as given (after ordering), so Min and Max round-trip.
func FromMinMax(kind Kind, lo, hi float64) Quantity {
	q := Quantity{
		kind:    kind,
		nominal: (lo + hi) / 2,
		bounds:  interval{math.Min(lo, hi), math.Max(lo, hi)},
	}
	if kind == Resistance {
		q.temp = temperatureAnchor{DefaultTemperature, true}
	}
	return q
}

// NewVoltage constructs a voltage in volts.
func NewVoltage(nominal, tolerance float64) (Quantity, error) {
	return New(Voltage, nominal, tolerance)
}

// NewCurrent constructs a current in amperes.
func NewCurrent(nominal, tolerance float64) (Quantity, error) {
	return New(Current, nominal, tolerance)
}

// NewResistance constructs a resistance in ohms, anchored at 20°C, without a
// temperature coefficient.
func NewResistance(nominal, tolerance float64) (Quantity, error) {
	return New(Resistance, nominal, tolerance)
}

// NewResistanceAlpha constructs a resistance in ohms with a linear
// temperature coefficient in ppm/°C, anchored at 20°C.
func NewResistanceAlpha(nominal, tolerance, alphaPpm float64) (Quantity, error) {
	q, err := New(Resistance, nominal, tolerance)
	if err != nil {
		return Quantity{}, err
	}
	q.alpha = tempCoefficient{alphaPpm, true}
	return q, nil
}

// NewPower constructs a power in watts.
func NewPower(nominal, tolerance float64) (Quantity, error) {
	return New(Power, nominal, tolerance)
}

// NewEnergy constructs an energy in joules.
func NewEnergy(nominal, tolerance float64) (Quantity, error) {
	return New(Energy, nominal, tolerance)
}

// NewDuration constructs a time in seconds.
func NewDuration(nominal, tolerance float64) (Quantity, error) {
	return New(Duration, nominal, tolerance)
}

// NewFactor constructs a dimensionless factor.
func NewFactor(nominal, tolerance float64) (Quantity, error) {
	return New(Dimensionless, nominal, tolerance)
}

// Kind returns the quantity's kind.
func (q Quantity) Kind() Kind { return q.kind }

// Nominal returns the best-estimate magnitude in base SI units.
func (q Quantity) Nominal() float64 { return q.nominal }

// Min returns the worst-case lower bound.
func (q Quantity) Min() float64 { return q.bounds.lo }

// Max returns the worst-case upper bound.
func (q Quantity) Max() float64 { return q.bounds.hi }

// Tolerance returns the symmetric relative tolerance fraction,
// (max-min)/(2·|nominal|). For a zero nominal the relative fraction is
// undefined and 0 is returned; use HalfWidth for the absolute spread.
func (q Quantity) Tolerance() float64 {
	if q.nominal == 0 {
		return 0
	}
	return (q.bounds.hi - q.bounds.lo) / (2 * math.Abs(q.nominal))
}

// HalfWidth returns the absolute half-width (max-min)/2 of the interval.
func (q Quantity) HalfWidth() float64 {
	return (q.bounds.hi - q.bounds.lo) / 2
}

// Exact reports whether the quantity carries no uncertainty.
func (q Quantity) Exact() bool {
	return q.bounds.lo == q.bounds.hi
}

// Temperature returns a resistance's anchor temperature in °C. The second
// result is false for non-resistances and for resistances combined from
// operands at differing temperatures ("mixed").
func (q Quantity) Temperature() (float64, bool) {
	return q.temp.celsius, q.temp.known
}

// AlphaPpm returns a resistance's temperature coefficient in ppm/°C, if set.
func (q Quantity) AlphaPpm() (float64, bool) {
	return q.alpha.ppm, q.alpha.set
}

// Restore rebuilds a quantity from persisted state: exact bounds plus the
// optional resistance metadata (nil pointers mean unknown/unset). It is the
// storage round-trip counterpart of the read accessors and performs no
// validation beyond ordering the bounds.
func Restore(kind Kind, nominal, lo, hi float64, tempC, alphaPpm *float64) Quantity {
	q := Quantity{
		kind:    kind,
		nominal: nominal,
		bounds:  interval{math.Min(lo, hi), math.Max(lo, hi)},
	}
	if kind != Resistance {
		return q
	}
	if tempC != nil {
		q.temp = temperatureAnchor{*tempC, true}
	}
	if alphaPpm != nil {
		q.alpha = tempCoefficient{*alphaPpm, true}
	}
	return q
}

// derive builds an operation result of the given kind from propagated
// bounds and a directly combined nominal value. A derived resistance starts
// at the default anchor; the resistance combinators overwrite it with their
// own temperature rules.
func derive(kind Kind, nominal float64, bounds interval) Quantity {
	q := Quantity{kind: kind, nominal: nominal, bounds: bounds}
	if kind == Resistance {
		q.temp = temperatureAnchor{DefaultTemperature, true}
	}
	return q
}
