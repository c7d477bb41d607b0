package model

import (
	"context"
	"time"
)

// UserStatus is the classification status flag of a user.
type UserStatus string

// UserStatusReadyForUse means enough photos are classified for the app to be used.
const UserStatusReadyForUse UserStatus = "readyForUse"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id string) (User, error)
	// SetStatus upserts the status flag. Setting the same value twice is not an error.
	SetStatus(ctx context.Context, id string, status UserStatus) error
}

// User represents a stored user.
type User struct {
	ID                   string
	ClassifyPhotosStatus UserStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
