// Package handler implements the JSON endpoints called by the mobile app.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dtroode/gourmet-server/internal/model"
)

const maxBodyBytes = 16 << 20

// Ingester runs one ingestion of a user's photo library.
type Ingester interface {
	Run(ctx context.Context, userID, accessToken string) (model.IngestResult, error)
}

// StatusMarker flips a user's status flag.
type StatusMarker interface {
	MarkReady(ctx context.Context, userID string) error
}

// VenueFinder attaches nearby restaurants to a photo.
type VenueFinder interface {
	FindNearby(ctx context.Context, userID, photoID string, lat, lng float64) ([]model.Venue, error)
}

// FoodCategorizer labels a single uploaded photo.
type FoodCategorizer interface {
	Categorize(ctx context.Context, userID, photoID, photoBase64 string) (model.FoodCategory, error)
}

// ReadinessChecker reports dependency failures.
type ReadinessChecker interface {
	Err(ctx context.Context) error
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", model.ErrInvalidArgument, err)
	}
	return nil
}
