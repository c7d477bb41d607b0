package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Venue attaches restaurants found around a photo's location to the photo.
type Venue struct {
	finder     model.PlaceFinder
	venueStore model.VenueStore
	photoStore model.PhotoStore
	status     *Status
	logger     *logger.Logger
}

func NewVenue(
	finder model.PlaceFinder,
	venueStore model.VenueStore,
	photoStore model.PhotoStore,
	status *Status,
	logger *logger.Logger,
) *Venue {
	return &Venue{
		finder:     finder,
		venueStore: venueStore,
		photoStore: photoStore,
		status:     status,
		logger:     logger,
	}
}

func (s *Venue) FindNearby(ctx context.Context, userID, photoID string, lat, lng float64) ([]model.Venue, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, model.ErrMissingUserID
	}
	if strings.TrimSpace(photoID) == "" {
		return nil, fmt.Errorf("%w: photoId not provided", model.ErrInvalidArgument)
	}
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", model.ErrInvalidArgument)
	}

	places, err := s.finder.NearbyRestaurants(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	venues := make([]model.Venue, 0, len(places))
	storeIDs := make([]string, 0, len(places))
	for _, p := range places {
		v := model.Venue{
			UserID:       userID,
			PhotoID:      photoID,
			StoreID:      p.ID,
			Name:         p.Name,
			Address:      p.Address,
			PhoneNumber:  p.PhoneNumber,
			Website:      p.Website,
			Rating:       p.Rating,
			OpeningHours: strings.Join(p.OpeningHours, "; "),
			ImageURLs:    p.PhotoURLs,
		}
		if err := s.venueStore.Upsert(ctx, v); err != nil {
			return nil, &model.PersistenceError{Op: "failed to save store", Err: err}
		}
		venues = append(venues, v)
		storeIDs = append(storeIDs, p.ID)
	}

	err = s.photoStore.SetAreaStoreIDs(ctx, userID, photoID, storeIDs)
	switch {
	case errors.Is(err, model.ErrNotFound):
		s.logger.Warn("photo not found, area stores not linked", "user_id", userID, "photo_id", photoID)
	case err != nil:
		return nil, &model.PersistenceError{Op: "failed to link area stores", Err: err}
	}

	if err := s.status.MarkReady(ctx, userID); err != nil {
		return nil, err
	}

	s.logger.Info("nearby restaurants saved", "user_id", userID, "photo_id", photoID, "count", len(venues))
	return venues, nil
}
