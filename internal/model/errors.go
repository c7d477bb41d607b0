package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMissingAccessToken rejects requests without a bearer token.
	ErrMissingAccessToken = errors.New("access token not provided")
	// ErrMissingUserID rejects requests without a user id.
	ErrMissingUserID = errors.New("userId not provided")
	// ErrInvalidArgument marks malformed client input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UpstreamError reports a failure of a remote API (photo library, places, gemini).
// It aborts the whole invocation.
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ClassificationError reports a failure to classify a single image.
// It is never fatal: the image is skipped.
type ClassificationError struct {
	MediaItemID string
	Err         error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify media item %s: %v", e.MediaItemID, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// PersistenceError reports a storage upload or database write failure.
// It aborts the whole invocation without rolling back earlier writes.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
