package store

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sqlx.DB
}

// NewSQLiteDB opens a database handle, applies pragmas, runs pending
// migrations and seeds default data. A failure at any step closes the handle
// and returns the error; callers never see a partially initialized database.
func NewSQLiteDB(dsn string) (*DB, error) {
	// _time_format=sqlite stores timestamps as text that SQLite's date
	// functions can parse; the analytics queries depend on that.
	sdb, err := sqlx.Open("sqlite", dsn+"?_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// Single local writer; serialize all statements on one connection.
	sdb.SetMaxOpenConns(1)

	db := &DB{sdb}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.Seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed db: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// RunInTx runs fn inside a transaction. Any error rolls the whole scope back.
func (db *DB) RunInTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Manager owns the process-wide database handle: open once, reuse, close
// explicitly. Reset exists for tests.
type Manager struct {
	mu   sync.Mutex
	path string
	db   *DB
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Open returns the cached handle, opening and initializing it on first call.
// Nothing is cached if initialization fails.
func (m *Manager) Open() (*DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	db, err := NewSQLiteDB(m.path)
	if err != nil {
		return nil, err
	}
	m.db = db
	return db, nil
}

// Close releases the handle and clears the cache.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// Reset closes and forgets the cached handle so the next Open starts fresh.
func (m *Manager) Reset() error {
	return m.Close()
}
