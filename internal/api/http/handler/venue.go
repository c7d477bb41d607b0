package handler

import (
	"fmt"
	"net/http"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Venue serves the nearby restaurant lookup.
type Venue struct {
	finder VenueFinder
	logger *logger.Logger
}

func NewVenue(finder VenueFinder, logger *logger.Logger) *Venue {
	return &Venue{finder: finder, logger: logger}
}

type nearbyRequest struct {
	UserID  string   `json:"userId"`
	PhotoID string   `json:"photoId"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type store struct {
	StoreID      string   `json:"storeId"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Website      string   `json:"website,omitempty"`
	Rating       float32  `json:"rating"`
	OpeningHours string   `json:"openingHours,omitempty"`
	ImageURLs    []string `json:"imageUrls"`
}

type nearbyResponse struct {
	Message string  `json:"message"`
	Stores  []store `json:"stores"`
}

// FindNearbyRestaurant handles POST /findNearbyRestaurant.
func (h *Venue) FindNearbyRestaurant(w http.ResponseWriter, r *http.Request) {
	var req nearbyRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if req.UserID == "" {
		handleError(w, model.ErrMissingUserID, h.logger)
		return
	}
	if req.Lat == nil || req.Lon == nil {
		handleError(w, fmt.Errorf("%w: lat and lon are required", model.ErrInvalidArgument), h.logger)
		return
	}

	venues, err := h.finder.FindNearby(r.Context(), req.UserID, req.PhotoID, *req.Lat, *req.Lon)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	stores := make([]store, 0, len(venues))
	for _, v := range venues {
		images := v.ImageURLs
		if images == nil {
			images = []string{}
		}
		stores = append(stores, store{
			StoreID:      v.StoreID,
			Name:         v.Name,
			Address:      v.Address,
			PhoneNumber:  v.PhoneNumber,
			Website:      v.Website,
			Rating:       v.Rating,
			OpeningHours: v.OpeningHours,
			ImageURLs:    images,
		})
	}

	msg := "Restaurants found"
	if len(stores) == 0 {
		msg = "No restaurants found nearby"
	}
	writeJSON(w, http.StatusOK, nearbyResponse{Message: msg, Stores: stores})
}
