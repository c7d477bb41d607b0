package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gourmet-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	var user model.User
	query := `SELECT id, classify_photos_status, created_at, updated_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.ClassifyPhotosStatus, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// SetStatus upserts the status flag of the user.
func (r *UserRepository) SetStatus(ctx context.Context, id string, status model.UserStatus) error {
	query := `INSERT INTO users (id, classify_photos_status)
			  VALUES ($1, $2)
			  ON CONFLICT (id) DO UPDATE
			  SET classify_photos_status = EXCLUDED.classify_photos_status, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, id, string(status)); err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}

	return nil
}
