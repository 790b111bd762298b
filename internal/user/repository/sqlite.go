package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/jmoiron/sqlx"
)

// userRow mirrors the users table; pinned ids are kept as a JSON array.
type userRow struct {
	ID               int64          `db:"id"`
	Name             string         `db:"name"`
	ProfilePicture   *string        `db:"profile_picture"`
	Pin              string         `db:"pin"`
	PinnedProductIDs sql.NullString `db:"pinned_product_ids"`
}

func toRow(u *model.User) (*userRow, error) {
	row := &userRow{
		ID:             u.ID,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		Pin:            u.Pin,
	}
	if u.PinnedProductIDs != nil {
		raw, err := json.Marshal(u.PinnedProductIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode pinned products: %w", err)
		}
		row.PinnedProductIDs = sql.NullString{String: string(raw), Valid: true}
	}
	return row, nil
}

// toModel never fails: an unreadable pinned list is treated as empty.
func (row *userRow) toModel() model.User {
	u := model.User{
		ID:             row.ID,
		Name:           row.Name,
		ProfilePicture: row.ProfilePicture,
		Pin:            row.Pin,
	}
	if row.PinnedProductIDs.Valid {
		var ids []int64
		if err := json.Unmarshal([]byte(row.PinnedProductIDs.String), &ids); err == nil {
			u.PinnedProductIDs = ids
		}
	}
	return u
}

type SQLiteRepository struct {
	Store *store.Store
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{Store: s}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	err := r.Store.Do(ctx, "list users", func(q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &rows, `SELECT id, name, profile_picture, pin, pinned_product_ids FROM users`)
	})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toModel())
	}
	return users, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, u *model.User) error {
	row, err := toRow(u)
	if err != nil {
		return err
	}
	return r.Store.Do(ctx, "upsert user", func(q sqlx.ExtContext) error {
		query := `
			INSERT OR REPLACE INTO users (id, name, profile_picture, pin, pinned_product_ids)
			VALUES (:id, :name, :profile_picture, :pin, :pinned_product_ids)
		`
		_, err := sqlx.NamedExecContext(ctx, q, query, row)
		return err
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	return r.Store.Do(ctx, "delete user", func(q sqlx.ExtContext) error {
		_, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
		return err
	})
}
