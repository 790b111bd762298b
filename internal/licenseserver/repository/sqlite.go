package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-desktop/internal/licenseserver"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

const licenseColumns = `
	id, key_hash, key_plain, email, machine_fingerprint, license_type, expires_at,
	activated_at, is_active, activation_count, max_activations, created_at
`

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

func (r *SQLiteRepository) FindByKeyHash(ctx context.Context, keyHash string) (*licenseserver.License, error) {
	var l licenseserver.License
	found := true
	err := r.Store.Do(ctx, "find license", func(q sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, q, &l, `SELECT `+licenseColumns+` FROM licenses WHERE key_hash = ?`, keyHash)
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
	return &l, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, l *licenseserver.License) error {
	return r.Store.Do(ctx, "create license", func(q sqlx.ExtContext) error {
		query := `
			INSERT INTO licenses (key_hash, key_plain, email, license_type, expires_at, is_active, max_activations, created_at)
			VALUES (:key_hash, :key_plain, :email, :license_type, :expires_at, :is_active, :max_activations, :created_at)
		`
		res, err := sqlx.NamedExecContext(ctx, q, query, l)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read license id: %w", err)
		}
		l.ID = id
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context) ([]licenseserver.License, error) {
	licenses := []licenseserver.License{}
	err := r.Store.Do(ctx, "list licenses", func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &licenses, `SELECT `+licenseColumns+` FROM licenses ORDER BY created_at DESC, id DESC`)
	})
	if err != nil {
		return nil, err
	}
	return licenses, nil
}

func (r *SQLiteRepository) ListByEmail(ctx context.Context, email string) ([]licenseserver.License, error) {
	licenses := []licenseserver.License{}
	err := r.Store.Do(ctx, "list licenses by email", func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &licenses, `SELECT `+licenseColumns+` FROM licenses WHERE email = ? ORDER BY id`, email)
	})
	if err != nil {
		return nil, err
	}
	return licenses, nil
}

func (r *SQLiteRepository) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	var changed bool
	err := r.Store.Do(ctx, "set license active", func(q sqlx.ExtContext) error {
		res, err := q.ExecContext(ctx, `UPDATE licenses SET is_active = ? WHERE id = ?`, active, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		changed = n > 0
		return nil
	})
	return changed, err
}

func (r *SQLiteRepository) RecordActivation(ctx context.Context, id int64, fingerprint string, at int64, client licenseserver.Client) error {
	return r.Store.Tx(ctx, "record activation", func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE licenses
			SET machine_fingerprint = ?, activated_at = ?, activation_count = activation_count + 1
			WHERE id = ?
		`, fingerprint, at, id)
		if err != nil {
			return fmt.Errorf("failed to bind license: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO validation_logs (license_id, machine_fingerprint, valid, ip_address, user_agent, validated_at)
			VALUES (?, ?, 1, ?, ?, ?)
		`, id, fingerprint, nullable(client.IPAddress), nullable(client.UserAgent), at)
		if err != nil {
			return fmt.Errorf("failed to log validation: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) ListValidationLogs(ctx context.Context, licenseID int64) ([]licenseserver.ValidationLog, error) {
	logs := []licenseserver.ValidationLog{}
	err := r.Store.Do(ctx, "list validation logs", func(q sqlx.ExtContext) error {
		query := `
			SELECT id, license_id, machine_fingerprint, valid, ip_address, user_agent, validated_at
			FROM validation_logs WHERE license_id = ? ORDER BY id
		`
		return sqlx.SelectContext(ctx, q, &logs, query, licenseID)
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
