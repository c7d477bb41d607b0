package service

import (
	"context"
	"errors"
	"time"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Watermark finds the capture time of the newest photo already ingested for
// a user.
type Watermark struct {
	photoStore model.PhotoStore
	logger     *logger.Logger
}

func NewWatermark(photoStore model.PhotoStore, logger *logger.Logger) *Watermark {
	return &Watermark{
		photoStore: photoStore,
		logger:     logger,
	}
}

// Get returns the watermark and whether the user has any ingested photo.
// An unparseable latest id is logged and treated as no history.
func (s *Watermark) Get(ctx context.Context, userID string) (time.Time, bool, error) {
	id, err := s.photoStore.LatestID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, &model.PersistenceError{Op: "failed to get latest photo id", Err: err}
	}

	wm, err := model.ParsePhotoID(id)
	if err != nil {
		s.logger.Warn("ignoring unparseable photo id", "user_id", userID, "photo_id", id, "error", err)
		return time.Time{}, false, nil
	}

	return wm, true, nil
}
