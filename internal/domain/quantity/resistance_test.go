package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkR(t *testing.T, nominal, tol, alphaPpm float64) Quantity {
	t.Helper()
	r, err := NewResistanceAlpha(nominal, tol, alphaPpm)
	require.NoError(t, err)
	return r
}

func TestSeries_AddsBoundsAndKeepsSharedTemperature(t *testing.T) {
	r1 := mk(t, Resistance, 1000, 0.01)
	r2 := mk(t, Resistance, 2000, 0.01)

	r, err := r1.Series(r2)
	require.NoError(t, err)
	assert.Equal(t, Resistance, r.Kind())
	assert.InDelta(t, 3000.0, r.Nominal(), 1e-9)
	assert.InDelta(t, 2970.0, r.Min(), 1e-9)
	assert.InDelta(t, 3030.0, r.Max(), 1e-9)

	temp, known := r.Temperature()
	assert.True(t, known)
	assert.Equal(t, 20.0, temp)
}

func TestSeries_MixedTemperaturesClearAnchor(t *testing.T) {
	r1 := mkR(t, 1000, 0.01, 200)
	r2 := mkR(t, 2000, 0.01, 150)

	hot, err := r2.AtTemperature(100)
	require.NoError(t, err)

	r, err := r1.Series(hot)
	require.NoError(t, err)
	_, known := r.Temperature()
	assert.False(t, known)
}

func TestSeries_AlphaNotCarried(t *testing.T) {
	// Two coefficients have no single combined value.
	r1 := mkR(t, 1000, 0.01, 200)
	r2 := mkR(t, 2000, 0.01, 150)

	r, err := r1.Series(r2)
	require.NoError(t, err)
	_, hasAlpha := r.AlphaPpm()
	assert.False(t, hasAlpha)
}

func TestParallel_NominalAndBounds(t *testing.T) {
	r1 := mk(t, Resistance, 1000, 0)
	r2 := mk(t, Resistance, 2000, 0)

	r, err := r1.Parallel(r2)
	require.NoError(t, err)
	assert.InDelta(t, 666.6667, r.Nominal(), 1e-3)
	assert.Equal(t, 0.0, r.Tolerance())
}

func TestParallel_ToleratedOperands(t *testing.T) {
	r1 := mk(t, Resistance, 1000, 0.05) // [950, 1050]
	r2 := mk(t, Resistance, 2000, 0.01) // [1980, 2020]

	r, err := r1.Parallel(r2)
	require.NoError(t, err)
	assert.InDelta(t, 666.6667, r.Nominal(), 1e-3)
	assert.InDelta(t, 950.0*1980.0/2930.0, r.Min(), 1e-9)
	assert.InDelta(t, 1050.0*2020.0/3070.0, r.Max(), 1e-9)
	assert.True(t, r.Min() <= r.Nominal() && r.Nominal() <= r.Max())
}

func TestParallel_LeftAssociativeChaining(t *testing.T) {
	r1 := mk(t, Resistance, 300, 0)
	r2 := mk(t, Resistance, 300, 0)
	r3 := mk(t, Resistance, 150, 0)

	step, err := r1.Parallel(r2)
	require.NoError(t, err)
	r, err := step.Parallel(r3)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, r.Nominal(), 1e-9)
}

func TestParallel_TemperatureRules(t *testing.T) {
	r1 := mkR(t, 1000, 0.05, 250)
	r2 := mkR(t, 2000, 0.01, 100)

	r, err := r1.Parallel(r2)
	require.NoError(t, err)
	temp, known := r.Temperature()
	assert.True(t, known)
	assert.Equal(t, 20.0, temp)

	hot1, err := r1.AtTemperature(100)
	require.NoError(t, err)
	hot2, err := r2.AtTemperature(100)
	require.NoError(t, err)
	r, err = hot1.Parallel(hot2)
	require.NoError(t, err)
	temp, known = r.Temperature()
	assert.True(t, known)
	assert.Equal(t, 100.0, temp)

	r, err = r1.Parallel(hot2)
	require.NoError(t, err)
	_, known = r.Temperature()
	assert.False(t, known)
}

func TestParallel_NonPositiveBoundFails(t *testing.T) {
	good := mk(t, Resistance, 100, 0.01)
	bad := FromMinMax(Resistance, -10, 50)

	_, err := good.Parallel(bad)
	assert.ErrorIs(t, err, ErrZeroInterval)
}

func TestDivider_ToleratedPair(t *testing.T) {
	r1 := mk(t, Resistance, 1000, 0.05)
	r2 := mk(t, Resistance, 2000, 0.01)

	f, err := r1.Divider(r2)
	require.NoError(t, err)
	assert.Equal(t, Dimensionless, f.Kind())
	assert.InDelta(t, 0.3333, f.Nominal(), 1e-4)
	assert.InDelta(t, 0.3199, f.Min(), 1e-4)
	assert.InDelta(t, 0.3465, f.Max(), 1e-4)
	assert.InDelta(t, 0.040, f.Tolerance(), 1e-3)
}

// TestDivider_FusedBeatsNaiveComposition pins down the double-counting
// hazard: r1/(r1+r2) via two generic operations reuses r1's tolerance in both
// the numerator and the denominator and must come out wider than the fused
// combinator.
func TestDivider_FusedBeatsNaiveComposition(t *testing.T) {
	r1 := mk(t, Resistance, 1000, 0.05)
	r2 := mk(t, Resistance, 2000, 0.01)

	fused, err := r1.Divider(r2)
	require.NoError(t, err)

	sum, err := r1.Add(r2)
	require.NoError(t, err)
	naive, err := r1.Div(sum)
	require.NoError(t, err)

	assert.Less(t, fused.Tolerance(), naive.Tolerance())
	assert.InDelta(t, fused.Nominal(), naive.Nominal(), 1e-9)
}

func TestDivider_RequiresSameTemperature(t *testing.T) {
	r1 := mkR(t, 1000, 0.01, 200)
	r2 := mkR(t, 2000, 0.01, 200)

	hot, err := r2.AtTemperature(85)
	require.NoError(t, err)

	_, err = r1.Divider(hot)
	assert.ErrorIs(t, err, ErrTemperatureMismatch)

	// A mixed-temperature operand has no anchor at all.
	mixed, err := r1.Series(hot)
	require.NoError(t, err)
	_, err = mixed.Divider(r1)
	assert.ErrorIs(t, err, ErrTemperatureMismatch)
}

func TestAtTemperature_ShiftsNominalKeepsTolerance(t *testing.T) {
	r := mkR(t, 1000, 0.01, 200)

	shifted, err := r.AtTemperature(250)
	require.NoError(t, err)
	// 1000 · (1 + 200e-6 · 230)
	assert.InDelta(t, 1046.0, shifted.Nominal(), 1e-9)
	assert.InDelta(t, 0.01, shifted.Tolerance(), 1e-12)
	assert.InDelta(t, 1046.0*0.99, shifted.Min(), 1e-9)
	assert.InDelta(t, 1046.0*1.01, shifted.Max(), 1e-9)

	temp, known := shifted.Temperature()
	assert.True(t, known)
	assert.Equal(t, 250.0, temp)

	alpha, ok := shifted.AlphaPpm()
	assert.True(t, ok)
	assert.Equal(t, 200.0, alpha)

	// The original resistance is untouched.
	assert.InDelta(t, 1000.0, r.Nominal(), 1e-12)
	temp, _ = r.Temperature()
	assert.Equal(t, 20.0, temp)
}

func TestAtTemperature_ShiftsFromCurrentAnchor(t *testing.T) {
	r := mkR(t, 1000, 0, 1000)

	warm, err := r.AtTemperature(120) // 1000 · (1 + 1e-3 · 100) = 1100
	require.NoError(t, err)
	assert.InDelta(t, 1100.0, warm.Nominal(), 1e-9)

	back, err := warm.AtTemperature(20) // anchored at 120 now
	require.NoError(t, err)
	assert.InDelta(t, 1100.0*(1-0.1), back.Nominal(), 1e-9)
}

func TestAtTemperature_MissingCoefficient(t *testing.T) {
	r := mk(t, Resistance, 1000, 0.01)
	_, err := r.AtTemperature(100)
	assert.ErrorIs(t, err, ErrNoTempCoefficient)
}

func TestAtTemperature_NotAResistance(t *testing.T) {
	v := mk(t, Voltage, 10, 0)
	_, err := v.AtTemperature(100)
	assert.Error(t, err)
}

func TestFactorScaling_CarriesResistanceMetadata(t *testing.T) {
	r := mkR(t, 1000, 0.01, 200)
	hot, err := r.AtTemperature(100)
	require.NoError(t, err)
	half := mk(t, Dimensionless, 0.5, 0)

	scaled, err := hot.Mul(half)
	require.NoError(t, err)
	assert.Equal(t, Resistance, scaled.Kind())
	assert.InDelta(t, hot.Nominal()/2, scaled.Nominal(), 1e-9)
	temp, known := scaled.Temperature()
	assert.True(t, known)
	assert.Equal(t, 100.0, temp)

	// Commuted: factor on the left.
	scaled, err = half.Mul(hot)
	require.NoError(t, err)
	temp, known = scaled.Temperature()
	assert.True(t, known)
	assert.Equal(t, 100.0, temp)

	// Division by a factor keeps the anchor too.
	scaled, err = hot.Div(half)
	require.NoError(t, err)
	temp, known = scaled.Temperature()
	assert.True(t, known)
	assert.Equal(t, 100.0, temp)
}

func TestRatio_ResistancesYieldFactor(t *testing.T) {
	r1 := mk(t, Resistance, 3000, 0.01)
	r2 := mk(t, Resistance, 1000, 0.01)

	f, err := r1.Div(r2)
	require.NoError(t, err)
	assert.Equal(t, Dimensionless, f.Kind())
	assert.InDelta(t, 3.0, f.Nominal(), 1e-12)
	assert.InDelta(t, 2970.0/1010.0, f.Min(), 1e-9)
	assert.InDelta(t, 3030.0/990.0, f.Max(), 1e-9)
}
