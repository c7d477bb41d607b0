package model

import (
	"context"
	"time"
)

// PhotoLibrary is the remote photo library of a user.
type PhotoLibrary interface {
	// Search fetches a single page. An empty pageToken requests the first page.
	Search(ctx context.Context, accessToken string, pageSize int, pageToken string) (MediaPage, error)
	// Download returns the raw bytes of the item.
	Download(ctx context.Context, accessToken string, item MediaItem) ([]byte, error)
}

// MediaPage is one page of library items, newest first.
type MediaPage struct {
	Items         []MediaItem
	NextPageToken string
}

// MediaItem is an item of the remote library.
type MediaItem struct {
	ID           string
	Filename     string
	MimeType     string
	BaseURL      string
	CreationTime string
}

// Candidate is a MediaItem that passed the filter predicate.
type Candidate struct {
	Item   MediaItem
	ShotAt time.Time
}
