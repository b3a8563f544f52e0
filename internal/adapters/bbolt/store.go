// Package bbolt implements the ports.VarStore interface using bbolt
// (embedded B+ tree). Each REPL session gets its own top-level bucket
// holding the JSON-serialized variable bindings. Writes are transactional —
// a crash mid-write cannot corrupt previously committed sessions.
package bbolt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"eecalc/internal/ports"
)

var keyVars = []byte("vars")

// Store implements ports.VarStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path, creating
// parent directories as needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveVars replaces the stored bindings of a session.
func (s *Store) SaveVars(session string, vars map[string]ports.SavedVar) error {
	data, err := json.Marshal(vars)
	if err != nil {
		return fmt.Errorf("marshal vars: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(session))
		if err != nil {
			return err
		}
		return b.Put(keyVars, data)
	})
}

// LoadVars returns the stored bindings of a session; an unknown session
// yields an empty map.
func (s *Store) LoadVars(session string) (map[string]ports.SavedVar, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(session))
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(keyVars); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	vars := make(map[string]ports.SavedVar)
	if data == nil {
		return vars, nil
	}
	if err := json.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("unmarshal vars: %w", err)
	}
	return vars, nil
}

// ClearVars drops all bindings of a session. Clearing a session that was
// never saved is not an error.
func (s *Store) ClearVars(session string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(session))
		if err == bolt.ErrBucketNotFound {
			return nil // idempotent
		}
		return err
	})
}
