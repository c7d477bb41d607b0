package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gourmet-server/internal/model"
)

var _ model.PhotoStore = (*PhotoRepository)(nil)

type PhotoRepository struct {
	db *Connection
}

func NewPhotoRepository(db *Connection) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

// LatestID returns the greatest timestamp shaped id among the user's
// ingested photos. Ids are fixed width, so text ordering is capture ordering.
// Uploaded photos carry client chosen ids and are ignored.
func (r *PhotoRepository) LatestID(ctx context.Context, userID string) (string, error) {
	query := `SELECT id FROM photos
			  WHERE user_id = $1 AND source = $2 AND id ~ '^[0-9]{8}_[0-9]{6}$'
			  ORDER BY id DESC LIMIT 1`

	var id string
	err := r.db.QueryRow(ctx, query, userID, model.PhotoSourceIngest).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get latest photo id: %w", err)
	}

	return id, nil
}

// Upsert writes the photo record, replacing an existing record with the same id.
// created_at of an existing record is preserved, and so is an ingest source:
// an upload reusing the id of an ingested photo must not drop it from the watermark.
func (r *PhotoRepository) Upsert(ctx context.Context, photo model.Photo) error {
	if !photo.Source.Valid() {
		return fmt.Errorf("failed to upsert photo: invalid source %q", photo.Source)
	}

	query := `
		INSERT INTO photos (user_id, id, url, other_urls, tags, category, store_id, area_store_ids, shot_at, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, id) DO UPDATE SET
			source = CASE WHEN photos.source = 'ingest' THEN photos.source ELSE EXCLUDED.source END,
			url = EXCLUDED.url,
			other_urls = EXCLUDED.other_urls,
			tags = EXCLUDED.tags,
			category = EXCLUDED.category,
			store_id = EXCLUDED.store_id,
			area_store_ids = EXCLUDED.area_store_ids,
			shot_at = EXCLUDED.shot_at,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query,
		photo.UserID, photo.ID, photo.URL,
		nonNil(photo.OtherURLs), nonNil(photo.Tags), photo.Category,
		photo.StoreID, nonNil(photo.AreaStoreIDs), photo.ShotAt, photo.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert photo: %w", err)
	}

	return nil
}

func (r *PhotoRepository) SetAreaStoreIDs(ctx context.Context, userID, photoID string, storeIDs []string) error {
	const query = `UPDATE photos SET area_store_ids = $3, updated_at = NOW() WHERE user_id = $1 AND id = $2`

	cmd, err := r.db.Exec(ctx, query, userID, photoID, nonNil(storeIDs))
	if err != nil {
		return fmt.Errorf("failed to set area store ids: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ListByUser returns the newest photos of the user first.
func (r *PhotoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Photo, error) {
	query := `
		SELECT user_id, id, url, other_urls, tags, category, store_id, area_store_ids, source, shot_at, created_at, updated_at
		FROM photos
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []model.Photo
	for rows.Next() {
		var p model.Photo
		err := rows.Scan(
			&p.UserID, &p.ID, &p.URL, &p.OtherURLs, &p.Tags, &p.Category,
			&p.StoreID, &p.AreaStoreIDs, &p.Source, &p.ShotAt, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return photos, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
