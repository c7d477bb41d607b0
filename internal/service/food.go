package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/gourmet-server/internal/gemini"
	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// FoodCategorizer labels a single user supplied photo with a vision model.
type FoodCategorizer struct {
	describer   model.FoodDescriber
	storage     model.Storage
	photoStore  model.PhotoStore
	photoPrefix string
	logger      *logger.Logger
}

func NewFoodCategorizer(
	describer model.FoodDescriber,
	storage model.Storage,
	photoStore model.PhotoStore,
	photoPrefix string,
	logger *logger.Logger,
) *FoodCategorizer {
	return &FoodCategorizer{
		describer:   describer,
		storage:     storage,
		photoStore:  photoStore,
		photoPrefix: photoPrefix,
		logger:      logger,
	}
}

func (s *FoodCategorizer) Categorize(ctx context.Context, userID, photoID, photoBase64 string) (model.FoodCategory, error) {
	if strings.TrimSpace(userID) == "" {
		return "", model.ErrMissingUserID
	}
	if strings.TrimSpace(photoID) == "" || strings.ContainsAny(photoID, "/\\") {
		return "", fmt.Errorf("%w: invalid photoId", model.ErrInvalidArgument)
	}

	data, err := base64.StdEncoding.DecodeString(photoBase64)
	if err != nil {
		return "", fmt.Errorf("%w: photo is not valid base64", model.ErrInvalidArgument)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: photo is empty", model.ErrInvalidArgument)
	}

	key := fmt.Sprintf("%s/%s/%s.jpg", s.photoPrefix, userID, photoID)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), photoContentType); err != nil {
		return "", &model.PersistenceError{Op: "failed to upload photo", Err: err}
	}

	answer, err := s.describer.DescribeFood(ctx, data, http.DetectContentType(data))
	if err != nil {
		return "", err
	}
	category := gemini.ToFoodCategory(answer)

	shotAt, err := model.ParsePhotoID(photoID)
	if err != nil {
		shotAt = time.Now().UTC().Truncate(time.Second)
	}

	photo := model.Photo{
		UserID:   userID,
		ID:       photoID,
		URL:      s.storage.PublicURL(key),
		Tags:     []string{string(category)},
		Category: string(category),
		Source:   model.PhotoSourceUpload,
		ShotAt:   shotAt,
	}
	if err := s.photoStore.Upsert(ctx, photo); err != nil {
		return "", &model.PersistenceError{Op: "failed to save photo", Err: err}
	}

	s.logger.Info("food categorized", "user_id", userID, "photo_id", photoID, "category", category)
	return category, nil
}
