package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eecalc/internal/domain/quantity"
)

func mk(t *testing.T, kind quantity.Kind, nominal, tol float64) quantity.Quantity {
	t.Helper()
	q, err := quantity.New(kind, nominal, tol)
	require.NoError(t, err)
	return q
}

func TestSplit(t *testing.T) {
	cases := []struct {
		value  float64
		factor float64
		prefix string
	}{
		{0.000002, 1e-6, "µ"},
		{12e-6, 1e-6, "µ"},
		{0.2, 1e-3, "m"},
		{3, 1, ""},
		{-12.3, 1, ""},
		{818e3, 1e3, "k"},
		{5e9, 1e9, "G"},
		{75e-9, 1e-9, "n"},
		{1e-14, 1e-12, "p"},
		{9e15, 1e12, "T"},
		{0, 1, ""},
	}
	for _, c := range cases {
		factor, prefix := Split(c.value)
		assert.Equal(t, c.factor, factor, "value %v", c.value)
		assert.Equal(t, c.prefix, prefix, "value %v", c.value)
	}
}

func TestPretty_ExactValues(t *testing.T) {
	assert.Equal(t, "3.0V", Pretty(mk(t, quantity.Voltage, 3, 0)))
	assert.Equal(t, "-12.3V", Pretty(mk(t, quantity.Voltage, -12.3, 0)))
	assert.Equal(t, "818.0kV", Pretty(mk(t, quantity.Voltage, 818e3, 0)))
	assert.Equal(t, "0.0V", Pretty(mk(t, quantity.Voltage, 0, 0)))
}

func TestPretty_ToleratedVoltage(t *testing.T) {
	u := mk(t, quantity.Voltage, 200e-3, 0.1)
	assert.Equal(t, "200.0mV ± 10.0% (± 20.0mV) [180.0000 .. 220.0000]mV", Pretty(u))
}

func TestPretty_ToleratedCurrent(t *testing.T) {
	i := mk(t, quantity.Current, 12e-6, 0.05)
	assert.Equal(t, "12.0µA ± 5.0% (± 600.0nA) [11.4000 .. 12.6000]µA", Pretty(i))
}

func TestPretty_ResistanceWithMetadata(t *testing.T) {
	r, err := quantity.NewResistanceAlpha(8.5e3, 0.01, 200)
	require.NoError(t, err)
	assert.Equal(t, "8.5kΩ ± 1.0% (± 85.0Ω) [8.4150 .. 8.5850]kΩ @ 20°C α=200ppm", Pretty(r))

	plain := mk(t, quantity.Resistance, 1e3, 0)
	assert.Equal(t, "1.0kΩ @ 20°C", Pretty(plain))
}

func TestPretty_MixedTemperatureSeries(t *testing.T) {
	r1, err := quantity.NewResistanceAlpha(1e3, 0.01, 200)
	require.NoError(t, err)
	r2, err := quantity.NewResistanceAlpha(2e3, 0.01, 150)
	require.NoError(t, err)

	hot, err := r1.AtTemperature(100)
	require.NoError(t, err)
	sum, err := hot.Series(r2)
	require.NoError(t, err)

	assert.Equal(t, "3.02kΩ ± 1.0% (± 30.16Ω) [2.9858 .. 3.0462]kΩ @ mixed temp.", Pretty(sum))
}

func TestPretty_FactorsHaveNoUnitOrVariation(t *testing.T) {
	f := mk(t, quantity.Dimensionless, 1.0, 0.01)
	assert.Equal(t, "1.0 ± 1.0% [0.9900 .. 1.0100]", Pretty(f))

	f = quantity.FromMinMax(quantity.Dimensionless, 2, 3)
	assert.Equal(t, "2.5 ± 20.0% [2.0000 .. 3.0000]", Pretty(f))
}

func TestPrettyOpts_PartToggles(t *testing.T) {
	i := mk(t, quantity.Current, 12e-6, 0.05)

	o := DefaultOptions()
	o.Variation = false
	assert.Equal(t, "12.0µA ± 5.0% [11.4000 .. 12.6000]µA", PrettyOpts(i, o))

	o = DefaultOptions()
	o.Range = false
	assert.Equal(t, "12.0µA ± 5.0% (± 600.0nA)", PrettyOpts(i, o))

	o = DefaultOptions()
	o.Variation, o.Range = false, false
	assert.Equal(t, "12.0µA ± 5.0%", PrettyOpts(i, o))

	o = Options{Value: true}
	assert.Equal(t, "12.0µA", PrettyOpts(i, o))

	o = Options{Tolerance: true}
	assert.Equal(t, "± 5.0%", PrettyOpts(i, o))

	assert.Equal(t, "", PrettyOpts(i, Options{}))

	r, err := quantity.NewResistanceAlpha(8.5e3, 0.01, 200)
	require.NoError(t, err)
	o = DefaultOptions()
	o.Temperature = false
	assert.Equal(t, "8.5kΩ ± 1.0% (± 85.0Ω) [8.4150 .. 8.5850]kΩ", PrettyOpts(r, o))
}
