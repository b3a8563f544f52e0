package quantity

import "fmt"

// Series combines two resistors in series. It is resistance addition: both
// the nominal values and the bounds add, and the anchor temperature survives
// only when both resistors share one.
func (q Quantity) Series(other Quantity) (Quantity, error) {
	return q.Add(other)
}

// Parallel combines two resistors in parallel: r1·r2/(r1+r2), evaluated as
// one fused operation per bound so neither resistor's tolerance is counted
// twice. Non-positive resistance bounds fail with ErrZeroInterval.
func (q Quantity) Parallel(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpParallel, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	bounds, err := q.bounds.parallel(other.bounds)
	if err != nil {
		return Quantity{}, err
	}
	nominal := q.nominal * other.nominal / (q.nominal + other.nominal)
	out := derive(kind, nominal, bounds)
	out.temp = sharedAnchor(q.temp, other.temp)
	return out, nil
}

// Divider computes the voltage-divider factor q/(q+other) as a single fused
// operation. Composing it from generic division and addition would feed q's
// tolerance into both the numerator and the denominator and overstate the
// result's spread. Both resistors must be anchored at the same known
// temperature.
func (q Quantity) Divider(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpDivider, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	if !q.temp.known || !other.temp.known || q.temp.celsius != other.temp.celsius {
		return Quantity{}, ErrTemperatureMismatch
	}
	bounds, err := q.bounds.divider(other.bounds)
	if err != nil {
		return Quantity{}, err
	}
	nominal := q.nominal / (q.nominal + other.nominal)
	return derive(kind, nominal, bounds), nil
}

// AtTemperature re-anchors a resistance at temperature tC (in °C) using its
// linear coefficient: the nominal shifts by 1 + alpha·1e-6·(tC - anchor) and
// the bounds are rederived from the shifted nominal with the relative
// tolerance unchanged. The coefficient moves the center of the interval, not
// its relative spread. Fails with ErrNoTempCoefficient when no coefficient
// was given.
func (q Quantity) AtTemperature(tC float64) (Quantity, error) {
	if q.kind != Resistance {
		return Quantity{}, fmt.Errorf("at-temperature: not a resistance: %s", q.kind)
	}
	if !q.alpha.set {
		return Quantity{}, ErrNoTempCoefficient
	}

	anchor := DefaultTemperature
	if q.temp.known {
		anchor = q.temp.celsius
	}

	shifted, err := New(Resistance, q.nominal*(1+q.alpha.ppm*1e-6*(tC-anchor)), q.Tolerance())
	if err != nil {
		return Quantity{}, err
	}
	shifted.temp = temperatureAnchor{tC, true}
	shifted.alpha = q.alpha
	return shifted, nil
}
