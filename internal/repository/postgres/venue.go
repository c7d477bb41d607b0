package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/gourmet-server/internal/model"
)

var _ model.VenueStore = (*VenueRepository)(nil)

type VenueRepository struct {
	db *Connection
}

func NewVenueRepository(db *Connection) *VenueRepository {
	return &VenueRepository{
		db: db,
	}
}

func (r *VenueRepository) Upsert(ctx context.Context, v model.Venue) error {
	query := `
		INSERT INTO stores (user_id, photo_id, store_id, name, address, phone_number, website, rating, opening_hours, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, photo_id, store_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone_number = EXCLUDED.phone_number,
			website = EXCLUDED.website,
			rating = EXCLUDED.rating,
			opening_hours = EXCLUDED.opening_hours,
			image_urls = EXCLUDED.image_urls,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query,
		v.UserID, v.PhotoID, v.StoreID, v.Name, v.Address, v.PhoneNumber,
		v.Website, v.Rating, v.OpeningHours, nonNil(v.ImageURLs),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert store: %w", err)
	}

	return nil
}

func (r *VenueRepository) ListByPhoto(ctx context.Context, userID, photoID string) ([]model.Venue, error) {
	query := `
		SELECT user_id, photo_id, store_id, name, address, phone_number, website, rating, opening_hours, image_urls, created_at, updated_at
		FROM stores
		WHERE user_id = $1 AND photo_id = $2
		ORDER BY store_id`

	rows, err := r.db.Query(ctx, query, userID, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var venues []model.Venue
	for rows.Next() {
		var v model.Venue
		if err := rows.Scan(
			&v.UserID, &v.PhotoID, &v.StoreID, &v.Name, &v.Address, &v.PhoneNumber,
			&v.Website, &v.Rating, &v.OpeningHours, &v.ImageURLs, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return venues, nil
}
