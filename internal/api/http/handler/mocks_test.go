package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gourmet-server/internal/model"
)

type ingesterMock struct{ mock.Mock }

func (m *ingesterMock) Run(ctx context.Context, userID, accessToken string) (model.IngestResult, error) {
	args := m.Called(ctx, userID, accessToken)
	return args.Get(0).(model.IngestResult), args.Error(1)
}

type statusMock struct{ mock.Mock }

func (m *statusMock) MarkReady(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type venueFinderMock struct{ mock.Mock }

func (m *venueFinderMock) FindNearby(ctx context.Context, userID, photoID string, lat, lng float64) ([]model.Venue, error) {
	args := m.Called(ctx, userID, photoID, lat, lng)
	venues, _ := args.Get(0).([]model.Venue)
	return venues, args.Error(1)
}

type categorizerMock struct{ mock.Mock }

func (m *categorizerMock) Categorize(ctx context.Context, userID, photoID, photoBase64 string) (model.FoodCategory, error) {
	args := m.Called(ctx, userID, photoID, photoBase64)
	return args.Get(0).(model.FoodCategory), args.Error(1)
}

type checkerMock struct{ mock.Mock }

func (m *checkerMock) Err(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
