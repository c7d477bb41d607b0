package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gourmet-server/internal/testutil"
)

func TestHealth(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		h := NewHealth(&checkerMock{}, testutil.MakeNoopLogger())
		rec := httptest.NewRecorder()
		h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		checker := &checkerMock{}
		checker.On("Err", mock.Anything).Return(nil)
		h := NewHealth(checker, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		checker := &checkerMock{}
		checker.On("Err", mock.Anything).Return(errors.New("postgres: connection refused"))
		h := NewHealth(checker, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","error":"postgres: connection refused"}`, rec.Body.String())
	})
}
