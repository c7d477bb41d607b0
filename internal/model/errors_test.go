package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypes_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	var upstream *UpstreamError
	err := error(&UpstreamError{Service: "photos", StatusCode: 503, Err: cause})
	assert.True(t, errors.As(err, &upstream))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "photos: http 503: boom", err.Error())

	err = &UpstreamError{Service: "places", Err: cause}
	assert.Equal(t, "places: boom", err.Error())

	var persistence *PersistenceError
	err = &PersistenceError{Op: "upsert photo", Err: cause}
	assert.True(t, errors.As(err, &persistence))
	assert.ErrorIs(t, err, cause)

	var classification *ClassificationError
	err = &ClassificationError{MediaItemID: "m1", Err: cause}
	assert.True(t, errors.As(err, &classification))
	assert.Equal(t, "classify media item m1: boom", err.Error())
}
