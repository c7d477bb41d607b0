package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpContext "github.com/dtroode/gourmet-server/internal/api/http/context"
	"github.com/dtroode/gourmet-server/internal/model"
	"github.com/dtroode/gourmet-server/internal/testutil"
)

func newPhotoRequest(body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/classifyPhotos", strings.NewReader(body))
	if token != "" {
		ctx := httpContext.NewManager().SetAccessTokenToContext(req.Context(), token)
		req = req.WithContext(ctx)
	}
	return req
}

func TestPhoto_ClassifyPhotos(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		token    string
		setup    func(m *ingesterMock)
		wantCode int
		wantBody string
	}{
		{
			name:  "processed",
			body:  `{"userId":"u1"}`,
			token: "tok",
			setup: func(m *ingesterMock) {
				m.On("Run", mock.Anything, "u1", "tok").
					Return(model.IngestResult{Outcome: model.IngestOutcomeProcessed, Accepted: 3}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Successfully processed photos","outcome":"processed","accepted":3}`,
		},
		{
			name:  "no media",
			body:  `{"userId":"u1"}`,
			token: "tok",
			setup: func(m *ingesterMock) {
				m.On("Run", mock.Anything, "u1", "tok").
					Return(model.IngestResult{Outcome: model.IngestOutcomeNoMedia}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"No media items found","outcome":"no_media","accepted":0}`,
		},
		{
			name:     "missing token",
			body:     `{"userId":"u1"}`,
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"access token not provided"}`,
		},
		{
			name:     "missing user id",
			body:     `{}`,
			token:    "tok",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"userId not provided"}`,
		},
		{
			name:     "malformed body",
			body:     `{"userId":`,
			token:    "tok",
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "upstream failure",
			body:  `{"userId":"u1"}`,
			token: "tok",
			setup: func(m *ingesterMock) {
				m.On("Run", mock.Anything, "u1", "tok").
					Return(model.IngestResult{}, &model.UpstreamError{Service: "photos", Err: errors.New("timeout")})
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"photos request failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ingester := &ingesterMock{}
			if tt.setup != nil {
				tt.setup(ingester)
			}
			h := NewPhoto(ingester, &statusMock{}, httpContext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.ClassifyPhotos(rec, newPhotoRequest(tt.body, tt.token))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			ingester.AssertExpectations(t)
		})
	}
}

func TestPhoto_UpdateUserStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *statusMock)
		wantCode int
		wantBody string
	}{
		{
			name: "updated",
			body: `{"userId":"u1"}`,
			setup: func(m *statusMock) {
				m.On("MarkReady", mock.Anything, "u1").Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"User status updated successfully"}`,
		},
		{
			name:     "missing user id",
			body:     `{"userId":""}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"userId not provided"}`,
		},
		{
			name: "store failure",
			body: `{"userId":"u1"}`,
			setup: func(m *statusMock) {
				m.On("MarkReady", mock.Anything, "u1").
					Return(&model.PersistenceError{Op: "failed to update status", Err: errors.New("down")})
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := &statusMock{}
			if tt.setup != nil {
				tt.setup(status)
			}
			h := NewPhoto(&ingesterMock{}, status, httpContext.NewManager(), testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/updateUserStatus", strings.NewReader(tt.body))
			h.UpdateUserStatus(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			status.AssertExpectations(t)
		})
	}
}
