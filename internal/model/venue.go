package model

import (
	"context"
	"time"
)

// VenueStore defines persistence operations for restaurants found near a photo.
type VenueStore interface {
	Upsert(ctx context.Context, venue Venue) error
	ListByPhoto(ctx context.Context, userID, photoID string) ([]Venue, error)
}

// PlaceFinder looks up restaurants around a coordinate.
type PlaceFinder interface {
	NearbyRestaurants(ctx context.Context, lat, lng float64) ([]Place, error)
}

// Place is a restaurant as described by the places API.
type Place struct {
	ID           string
	Name         string
	Address      string
	PhoneNumber  string
	Website      string
	Rating       float32
	OpeningHours []string
	PhotoURLs    []string
}

// Venue is a Place attached to a user's photo.
type Venue struct {
	UserID       string
	PhotoID      string
	StoreID      string
	Name         string
	Address      string
	PhoneNumber  string
	Website      string
	Rating       float32
	OpeningHours string
	ImageURLs    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
