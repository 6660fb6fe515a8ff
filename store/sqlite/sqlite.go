/*
Package sqlite provides the SQLite-backed rate store.

PURPOSE:
  Persists the reference rate data the engine and the API consume: the
  year-versioned withholding tables (as factory JSON configs) and the
  minimum-wage history. Settlement results are deliberately NOT stored -
  the engine is a pure function and persisting its output is out of
  scope.

KEY TABLES:
  rate_configs:   One JSON rate configuration per year (see factory)
  minimum_wages:  Effective-dated national minimum-wage values

SEEDING:
  The schema is auto-migrated on New(). When empty, the store is seeded
  with the compiled-in 2026 tables and the full wage history so a fresh
  install answers every lookup immediately.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of the sql.DB pool.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers don't
  block and crash recovery improves.

USAGE:
  store, err := sqlite.New("./data/rates.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - factory: Rate config JSON schema
  - settlement/rates.go: Compiled-in defaults used for seeding
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/severance-engine/factory"
	"github.com/warp/severance-engine/generic"
	"github.com/warp/severance-engine/settlement"
)

// Store persists rate reference data in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store at the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Year-versioned withholding tables (factory JSON configs)
	CREATE TABLE IF NOT EXISTS rate_configs (
		year INTEGER PRIMARY KEY,
		config_json TEXT NOT NULL
	);

	-- Effective-dated minimum-wage history
	CREATE TABLE IF NOT EXISTS minimum_wages (
		effective_at TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// seed populates an empty store with the compiled-in defaults.
func (s *Store) seed() error {
	var configs int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rate_configs`).Scan(&configs); err != nil {
		return err
	}
	if configs == 0 {
		if _, err := s.db.Exec(
			`INSERT INTO rate_configs (year, config_json) VALUES (?, ?)`,
			2026, factory.DefaultRateConfigJSON(),
		); err != nil {
			return err
		}
	}

	var wages int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM minimum_wages`).Scan(&wages); err != nil {
		return err
	}
	if wages == 0 {
		for _, entry := range settlement.MinimumWages.Entries() {
			if _, err := s.db.Exec(
				`INSERT INTO minimum_wages (effective_at, value) VALUES (?, ?)`,
				entry.EffectiveAt.String(), entry.Value.String(),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// =============================================================================
// RATE CONFIGS
// =============================================================================

// SaveRateConfig inserts or replaces the config for a year.
func (s *Store) SaveRateConfig(ctx context.Context, year int, configJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO rate_configs (year, config_json) VALUES (?, ?)`,
		year, configJSON,
	)
	return err
}

// LatestRateConfig returns the config JSON for the most recent year.
func (s *Store) LatestRateConfig(ctx context.Context) (year int, configJSON string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		`SELECT year, config_json FROM rate_configs ORDER BY year DESC LIMIT 1`,
	)
	if err := row.Scan(&year, &configJSON); err != nil {
		return 0, "", fmt.Errorf("no rate config available: %w", err)
	}
	return year, configJSON, nil
}

// =============================================================================
// MINIMUM WAGES
// =============================================================================

// SaveMinimumWage inserts or replaces one effective-dated wage value.
func (s *Store) SaveMinimumWage(ctx context.Context, entry generic.DatedValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO minimum_wages (effective_at, value) VALUES (?, ?)`,
		entry.EffectiveAt.String(), entry.Value.String(),
	)
	return err
}

// MinimumWages loads the full wage history as an effective-dated table.
func (s *Store) MinimumWages(ctx context.Context) (generic.EffectiveTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT effective_at, value FROM minimum_wages ORDER BY effective_at DESC`,
	)
	if err != nil {
		return generic.EffectiveTable{}, err
	}
	defer rows.Close()

	var entries []generic.DatedValue
	for rows.Next() {
		var effectiveAt, value string
		if err := rows.Scan(&effectiveAt, &value); err != nil {
			return generic.EffectiveTable{}, err
		}
		tp, err := generic.ParseTimePoint(effectiveAt)
		if err != nil {
			return generic.EffectiveTable{}, fmt.Errorf("bad effective date %q: %w", effectiveAt, err)
		}
		entries = append(entries, generic.DatedValue{
			EffectiveAt: tp,
			Value:       generic.MustParseMoney(value),
		})
	}
	if err := rows.Err(); err != nil {
		return generic.EffectiveTable{}, err
	}

	return generic.NewEffectiveTable(entries), nil
}
