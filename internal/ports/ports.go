// Package ports defines the interfaces between the calculator's domain logic
// and its infrastructure adapters. Domain code depends only on these
// contracts, never on concrete implementations.
package ports

import (
	"fmt"

	"eecalc/internal/domain/quantity"
)

// SavedVar is the storable snapshot of a session variable. Bounds are stored
// exactly so a save/load cycle reproduces the quantity bit-for-bit; the
// pointer fields are nil when the resistance metadata is unknown/unset (or
// the quantity is not a resistance).
type SavedVar struct {
	Kind         string   `json:"kind"`
	Nominal      float64  `json:"nominal"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	AlphaPpm     *float64 `json:"alpha_ppm,omitempty"`
}

// Snapshot converts a quantity into its storable form.
func Snapshot(q quantity.Quantity) SavedVar {
	sv := SavedVar{
		Kind:    q.Kind().String(),
		Nominal: q.Nominal(),
		Min:     q.Min(),
		Max:     q.Max(),
	}
	if temp, known := q.Temperature(); known {
		t := temp
		sv.TemperatureC = &t
	}
	if alpha, ok := q.AlphaPpm(); ok {
		a := alpha
		sv.AlphaPpm = &a
	}
	return sv
}

// Quantity rebuilds the stored quantity.
func (sv SavedVar) Quantity() (quantity.Quantity, error) {
	kind, ok := quantity.KindFromName(sv.Kind)
	if !ok {
		return quantity.Quantity{}, fmt.Errorf("unknown quantity kind %q", sv.Kind)
	}
	return quantity.Restore(kind, sv.Nominal, sv.Min, sv.Max, sv.TemperatureC, sv.AlphaPpm), nil
}

// VarStore persists REPL variable bindings across sessions. Each session
// name gets its own namespace. Saves must be transactional: a crash
// mid-write must not corrupt previously committed sessions.
type VarStore interface {
	// SaveVars replaces the stored bindings of a session.
	SaveVars(session string, vars map[string]SavedVar) error

	// LoadVars returns the stored bindings of a session.
	// A session that was never saved yields an empty map, not an error.
	LoadVars(session string) (map[string]SavedVar, error)

	// ClearVars drops all bindings of a session. Idempotent.
	ClearVars(session string) error

	// Close releases the underlying store.
	Close() error
}

// Watcher monitors a single script file and reports changes to it.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the path after
	// each (debounced) modification. Watch returns immediately.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases resources. Safe to call twice.
	Stop() error
}
