package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*model.LicenseKey, error) {
	var key model.LicenseKey
	found := true
	err := r.Store.Do(ctx, "get license", func(q sqlx.ExtContext) error {
		query := `
			SELECT key_hash, email, machine_fingerprint, activated_at, expires_at, is_active, license_type
			FROM license WHERE id = 1
		`
		err := sqlx.GetContext(ctx, q, &key, query)
		if errors.Is(err, sql.ErrNoRows) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &key, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, key *model.LicenseKey) error {
	return r.Store.Tx(ctx, "save license", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM license`); err != nil {
			return err
		}
		query := `
			INSERT INTO license (id, key_hash, email, machine_fingerprint, activated_at, expires_at, is_active, license_type)
			VALUES (1, :key_hash, :email, :machine_fingerprint, :activated_at, :expires_at, :is_active, :license_type)
		`
		_, err := tx.NamedExecContext(ctx, query, key)
		return err
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return r.Store.Do(ctx, "clear license", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `DELETE FROM license`)
		return err
	})
}
