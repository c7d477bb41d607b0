package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

type Status struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewStatus(userStore model.UserStore, logger *logger.Logger) *Status {
	return &Status{
		userStore: userStore,
		logger:    logger,
	}
}

// MarkReady sets the user status flag to ready. Repeated calls are no-ops.
func (s *Status) MarkReady(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return model.ErrMissingUserID
	}

	if err := s.userStore.SetStatus(ctx, userID, model.UserStatusReadyForUse); err != nil {
		return &model.PersistenceError{Op: "failed to set user status", Err: err}
	}

	s.logger.Info("user status updated", "user_id", userID, "status", model.UserStatusReadyForUse)
	return nil
}

func (s *Status) Get(ctx context.Context, userID string) (model.UserStatus, error) {
	if strings.TrimSpace(userID) == "" {
		return "", model.ErrMissingUserID
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.ClassifyPhotosStatus, nil
}
