package quantity

// Add returns q + other. Only same-kind additions are legal, and factors
// cannot be added. Resistance addition is a series combination and follows
// the temperature anchor rules of Series.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpAdd, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	out := derive(kind, q.nominal+other.nominal, q.bounds.add(other.bounds))
	if kind == Resistance {
		out.temp = sharedAnchor(q.temp, other.temp)
	}
	return out, nil
}

// Sub returns q - other for same-kind operands. Worst-case bounds subtract
// crosswise: the result of subtracting two overlapping intervals can be a
// signed interval crossing zero, which is reported as-is, never corrected.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpSub, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	return derive(kind, q.nominal-other.nominal, q.bounds.sub(other.bounds)), nil
}

// Mul returns q * other with the result kind taken from the resolution table
// (U*I = P, I*R = U, scaling by a factor, ...).
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpMul, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	out := derive(kind, q.nominal*other.nominal, q.bounds.mul(other.bounds))
	carryResistanceMeta(&out, q, other)
	return out, nil
}

// Div returns q / other (U/R = I, same-kind ratios resolve to a factor, ...).
// A divisor interval containing zero fails with ErrZeroInterval.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	kind, err := Resolve(OpDiv, q.kind, other.kind)
	if err != nil {
		return Quantity{}, err
	}
	bounds, err := q.bounds.div(other.bounds)
	if err != nil {
		return Quantity{}, err
	}
	out := derive(kind, q.nominal/other.nominal, bounds)
	carryResistanceMeta(&out, q, other)
	return out, nil
}

// Squared returns q², defined for voltages and currents only.
func (q Quantity) Squared() (Quantity, error) {
	kind, err := Resolve(OpSquare, q.kind, q.kind)
	if err != nil {
		return Quantity{}, err
	}
	return derive(kind, q.nominal*q.nominal, q.bounds.square()), nil
}

// carryResistanceMeta preserves temperature metadata when a resistance is
// scaled by a factor: the scaled result is still the same physical resistor
// at the same anchor temperature with the same coefficient.
func carryResistanceMeta(out *Quantity, a, b Quantity) {
	if out.kind != Resistance {
		return
	}
	switch {
	case a.kind == Resistance && b.kind == Dimensionless:
		out.temp, out.alpha = a.temp, a.alpha
	case a.kind == Dimensionless && b.kind == Resistance:
		out.temp, out.alpha = b.temp, b.alpha
	}
}

// sharedAnchor returns the common anchor temperature of two combined
// resistors, or an unknown ("mixed") anchor when they differ.
func sharedAnchor(a, b temperatureAnchor) temperatureAnchor {
	if a.known && b.known && a.celsius == b.celsius {
		return a
	}
	return temperatureAnchor{}
}
