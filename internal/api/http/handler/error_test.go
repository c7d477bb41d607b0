package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gourmet-server/internal/model"
	"github.com/dtroode/gourmet-server/internal/testutil"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"missing token", model.ErrMissingAccessToken, http.StatusUnauthorized, `{"error":"access token not provided"}`},
		{"missing user", model.ErrMissingUserID, http.StatusBadRequest, `{"error":"userId not provided"}`},
		{"invalid argument", fmt.Errorf("%w: bad lat", model.ErrInvalidArgument), http.StatusBadRequest, `{"error":"invalid argument: bad lat"}`},
		{"not found", fmt.Errorf("failed to get user: %w", model.ErrNotFound), http.StatusNotFound, `{"error":"not found"}`},
		{"upstream", &model.UpstreamError{Service: "photos", StatusCode: 403, Err: errors.New("forbidden")}, http.StatusBadGateway, `{"error":"photos request failed"}`},
		{"persistence", &model.PersistenceError{Op: "failed to save photo", Err: errors.New("conn reset")}, http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleError(rec, tt.err, testutil.MakeNoopLogger())

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
