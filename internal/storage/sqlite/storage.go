// ABOUTME: Unified Storage layer that wraps all SQLite stores
// ABOUTME: Provides transactional write scopes and the full data wipe
package sqlite

import (
	"fmt"

	"allergentrack/internal/config"
)

// Storage manages all persistent data for the allergen tracker
type Storage struct {
	db        *DB
	Profile   *ProfileStore
	Allergens *AllergenStore
	Events    *EventStore
	Settings  *SettingsStore
}

// TxStores exposes every store bound to a single transaction
type TxStores struct {
	Profile   *ProfileStore
	Allergens *AllergenStore
	Events    *EventStore
	Settings  *SettingsStore
}

// NewStorage initializes storage at the configured database path and seeds it
func NewStorage() (*Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return NewStorageWithPath(cfg.DBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db)
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db)
}

func newStorage(db *DB) (*Storage, error) {
	s := &Storage{
		db:        db,
		Profile:   NewProfileStore(db),
		Allergens: NewAllergenStore(db),
		Events:    NewEventStore(db),
		Settings:  NewSettingsStore(db),
	}

	if err := s.Seed(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	return s, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Storage) Path() string {
	return s.db.Path()
}

// WithTx runs fn against transaction-bound stores. The whole scope commits
// or rolls back as one unit, so a feeding event write and its stat
// recompute are never observable separately.
func (s *Storage) WithTx(fn func(tx *TxStores) error) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stores := &TxStores{
		Profile:   NewProfileStore(tx),
		Allergens: NewAllergenStore(tx),
		Events:    NewEventStore(tx),
		Settings:  NewSettingsStore(tx),
	}

	if err := fn(stores); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Wipe deletes all stored data and reseeds the fixed allergens and
// default settings
func (s *Storage) Wipe() error {
	err := s.WithTx(func(tx *TxStores) error {
		for _, table := range []string{"feeding_events", "allergens", "profiles", "settings"} {
			if _, err := tx.Events.q.Exec(`DELETE FROM ` + table); err != nil {
				return fmt.Errorf("wiping %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Seed()
}
