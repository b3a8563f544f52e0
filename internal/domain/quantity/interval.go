package quantity

import "math"

// interval is a worst-case bound pair. Propagation treats the endpoints of
// both operands as independent extremes, never as a statistical combination,
// and assumes the operands' uncertainty sources are independent of each
// other. Reusing one uncertain quantity as both operands of an operation
// violates that assumption and double-counts its tolerance; the package-level
// fused combinators exist to keep callers out of that trap.
type interval struct {
	lo, hi float64
}

func (iv interval) add(other interval) interval {
	return interval{iv.lo + other.lo, iv.hi + other.hi}
}

func (iv interval) sub(other interval) interval {
	return interval{iv.lo - other.hi, iv.hi - other.lo}
}

// mul evaluates all four corner products. For the usual non-negative
// magnitudes this reduces to [lo1*lo2, hi1*hi2], but subtraction results can
// straddle zero and flip corners.
func (iv interval) mul(other interval) interval {
	return corners(
		iv.lo*other.lo,
		iv.lo*other.hi,
		iv.hi*other.lo,
		iv.hi*other.hi,
	)
}

// div evaluates the four corner quotients. The divisor interval must strictly
// exclude zero; a divisor that contains or touches zero has no finite bounds.
func (iv interval) div(other interval) (interval, error) {
	if other.lo <= 0 && other.hi >= 0 {
		return interval{}, ErrZeroInterval
	}
	return corners(
		iv.lo/other.lo,
		iv.lo/other.hi,
		iv.hi/other.lo,
		iv.hi/other.hi,
	), nil
}

// square is sign-aware: an interval straddling zero has a squared lower
// bound of exactly zero, not lo².
func (iv interval) square() interval {
	switch {
	case iv.lo >= 0:
		return interval{iv.lo * iv.lo, iv.hi * iv.hi}
	case iv.hi <= 0:
		return interval{iv.hi * iv.hi, iv.lo * iv.lo}
	default:
		return interval{0, math.Max(iv.lo*iv.lo, iv.hi*iv.hi)}
	}
}

// parallel combines two resistance intervals endpoint-wise as r1*r2/(r1+r2).
// The function is monotonically increasing in both arguments for positive
// resistances, so the endpoint pairing is exact. Endpoints at or below zero
// are rejected: the combination is only defined for positive resistances.
func (iv interval) parallel(other interval) (interval, error) {
	if iv.lo <= 0 || other.lo <= 0 {
		return interval{}, ErrZeroInterval
	}
	return interval{
		iv.lo * other.lo / (iv.lo + other.lo),
		iv.hi * other.hi / (iv.hi + other.hi),
	}, nil
}

// divider computes the fused voltage-divider factor r1/(r1+r2). Computing
// this as two generic operations would use r1's bounds in both the numerator
// and the denominator and overstate the spread; the fused form pairs each
// numerator extreme with the opposite extreme of r2 only.
func (iv interval) divider(other interval) (interval, error) {
	if iv.lo <= 0 || other.lo <= 0 {
		return interval{}, ErrZeroInterval
	}
	return interval{
		iv.lo / (iv.lo + other.hi),
		iv.hi / (iv.hi + other.lo),
	}, nil
}

func corners(a, b, c, d float64) interval {
	return interval{
		math.Min(math.Min(a, b), math.Min(c, d)),
		math.Max(math.Max(a, b), math.Max(c, d)),
	}
}
