package store

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Store exclusively owns the database handle. Every operation runs while
// holding one mutex, so reads and writes are serialized alike and a
// multi-statement write is never observed half done.
type Store struct {
	mu     sync.Mutex
	db     *sqlx.DB
	path   string
	logger logger.ZapLogger
}

// Open opens (creating if needed) the database file at path and ensures the
// POS schema exists.
func Open(path string, log logger.ZapLogger) (*Store, error) {
	return OpenWithSchema(path, Schema, log)
}

// OpenWithSchema is Open with a caller supplied, idempotent DDL script.
func OpenWithSchema(path, schema string, log logger.ZapLogger) (*Store, error) {
	db, err := sqlx.Open(driverName, dsn(path))
	if err != nil {
		return nil, wrap("open", err)
	}
	// One connection: SQLite has a single writer and the mutex already
	// serializes callers.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrap("open", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, wrap("create schema", err)
	}

	log.Info("Database opened", zap.String("path", path))
	return &Store{db: db, path: path, logger: log}, nil
}

// dsn escapes path as a URI filename so '?', '#' and '%' in a directory
// name reach SQLite unchanged.
func dsn(path string) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return "file:" + escaped + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Do runs fn against the connection while holding the store lock.
func (s *Store) Do(ctx context.Context, op string, fn func(q sqlx.ExtContext) error) error {
	if s == nil {
		return ErrNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrNotInitialized
	}
	return wrap(op, fn(s.db))
}

// Tx runs fn inside one transaction while holding the store lock. Any
// error from fn rolls the whole unit back.
func (s *Store) Tx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	if s == nil {
		return ErrNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrNotInitialized
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		s.logger.Warn("Transaction rolled back", zap.String("op", op), zap.Error(err))
		return wrap(op, err)
	}
	return wrap(op, tx.Commit())
}

// Close releases the handle. Later calls fail with ErrNotInitialized.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.logger.Info("Database closed", zap.String("path", s.path))
	return err
}
