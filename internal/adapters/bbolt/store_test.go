package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eecalc/internal/domain/quantity"
	"eecalc/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "eecalc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	u, err := quantity.NewVoltage(1.225, 0.002)
	require.NoError(t, err)
	r, err := quantity.NewResistanceAlpha(1e3, 0.01, 200)
	require.NoError(t, err)

	saved := map[string]ports.SavedVar{
		"u":  ports.Snapshot(u),
		"r1": ports.Snapshot(r),
	}
	require.NoError(t, s.SaveVars("default", saved))

	loaded, err := s.LoadVars("default")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	got, err := loaded["u"].Quantity()
	require.NoError(t, err)
	assert.Equal(t, quantity.Voltage, got.Kind())
	assert.Equal(t, u.Nominal(), got.Nominal())
	assert.Equal(t, u.Min(), got.Min())
	assert.Equal(t, u.Max(), got.Max())

	got, err = loaded["r1"].Quantity()
	require.NoError(t, err)
	assert.Equal(t, quantity.Resistance, got.Kind())
	temp, known := got.Temperature()
	assert.True(t, known)
	assert.Equal(t, 20.0, temp)
	alpha, ok := got.AlphaPpm()
	assert.True(t, ok)
	assert.Equal(t, 200.0, alpha)
}

func TestStore_UnknownSessionIsEmpty(t *testing.T) {
	s := newTestStore(t)

	vars, err := s.LoadVars("nope")
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := newTestStore(t)

	q, err := quantity.NewResistance(100, 0)
	require.NoError(t, err)
	require.NoError(t, s.SaveVars("a", map[string]ports.SavedVar{"r": ports.Snapshot(q)}))

	vars, err := s.LoadVars("b")
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestStore_SaveReplacesPreviousVars(t *testing.T) {
	s := newTestStore(t)

	q, err := quantity.NewResistance(100, 0)
	require.NoError(t, err)
	require.NoError(t, s.SaveVars("a", map[string]ports.SavedVar{"old": ports.Snapshot(q)}))
	require.NoError(t, s.SaveVars("a", map[string]ports.SavedVar{"new": ports.Snapshot(q)}))

	vars, err := s.LoadVars("a")
	require.NoError(t, err)
	require.Len(t, vars, 1)
	_, ok := vars["new"]
	assert.True(t, ok)
}

func TestStore_ClearVars(t *testing.T) {
	s := newTestStore(t)

	q, err := quantity.NewResistance(100, 0)
	require.NoError(t, err)
	require.NoError(t, s.SaveVars("a", map[string]ports.SavedVar{"r": ports.Snapshot(q)}))
	require.NoError(t, s.ClearVars("a"))

	vars, err := s.LoadVars("a")
	require.NoError(t, err)
	assert.Empty(t, vars)

	// Clearing twice is fine.
	require.NoError(t, s.ClearVars("a"))
}

func TestSavedVar_MixedTemperatureSurvives(t *testing.T) {
	r1, err := quantity.NewResistanceAlpha(1e3, 0.01, 200)
	require.NoError(t, err)
	hot, err := r1.AtTemperature(100)
	require.NoError(t, err)
	r2, err := quantity.NewResistance(2e3, 0.01)
	require.NoError(t, err)
	mixed, err := hot.Series(r2)
	require.NoError(t, err)

	got, err := ports.Snapshot(mixed).Quantity()
	require.NoError(t, err)
	_, known := got.Temperature()
	assert.False(t, known)
}

func TestSavedVar_UnknownKindFails(t *testing.T) {
	_, err := ports.SavedVar{Kind: "banana"}.Quantity()
	assert.Error(t, err)
}
