package model

import (
	"context"
	"fmt"
	"time"
)

// PhotoIDLayout is the layout of photo identifiers: the capture time in UTC.
// Identifiers of one user sort lexicographically in capture order.
const PhotoIDLayout = "20060102_150405"

// PhotoSource tells how a photo record was created.
type PhotoSource string

const (
	// PhotoSourceIngest marks photos pulled from the user's photo library.
	// Only these records take part in the ingestion watermark.
	PhotoSourceIngest PhotoSource = "ingest"
	// PhotoSourceUpload marks photos sent by the client with an id of its choice.
	PhotoSourceUpload PhotoSource = "upload"
)

// Valid reports whether s is a known source.
func (s PhotoSource) Valid() bool {
	return s == PhotoSourceIngest || s == PhotoSourceUpload
}

// PhotoStore defines persistence operations for photo records.
type PhotoStore interface {
	// LatestID returns the greatest id among the user's ingested photos or ErrNotFound.
	LatestID(ctx context.Context, userID string) (string, error)
	Upsert(ctx context.Context, photo Photo) error
	SetAreaStoreIDs(ctx context.Context, userID, photoID string, storeIDs []string) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Photo, error)
}

// Photo represents a stored photo record of a user.
type Photo struct {
	UserID       string
	ID           string
	URL          string
	OtherURLs    []string
	Tags         []string
	Category     string
	StoreID      *string
	AreaStoreIDs []string
	Source       PhotoSource
	ShotAt       time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PhotoIDFromTime formats a capture time as a photo id.
func PhotoIDFromTime(t time.Time) string {
	return t.UTC().Format(PhotoIDLayout)
}

// ParsePhotoID extracts the capture time encoded in a photo id.
func ParsePhotoID(id string) (time.Time, error) {
	t, err := time.ParseInLocation(PhotoIDLayout, id, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse photo id %q: %w", id, err)
	}
	return t, nil
}
