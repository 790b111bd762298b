// Package storetest opens throwaway stores for package tests.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap/zaptest"
)

func New(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "omnipos.db"), logger.Wrap(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// NewWithSchema is New for databases other than the desktop one.
func NewWithSchema(t testing.TB, schema string) *store.Store {
	t.Helper()
	s, err := store.OpenWithSchema(filepath.Join(t.TempDir(), "test.db"), schema, logger.Wrap(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
