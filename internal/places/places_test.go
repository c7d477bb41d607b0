package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gourmet-server/internal/model"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(" ", 15, "ja")
	assert.Error(t, err)
}

func TestFinder_NearbyRestaurants(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/maps/api/place/nearbysearch/json":
			q := r.URL.Query()
			assert.NotEmpty(t, q.Get("location"))
			assert.Equal(t, "15", q.Get("radius"))
			assert.Equal(t, "restaurant", q.Get("type"))
			assert.Equal(t, "ja", q.Get("language"))
			_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1"},{"place_id":"p2"}]}`))
		case "/maps/api/place/details/json":
			id := r.URL.Query().Get("placeid")
			if id == "" {
				id = r.URL.Query().Get("place_id")
			}
			switch id {
			case "p1":
				_, _ = w.Write([]byte(`{"status":"OK","result":{
					"place_id":"p1","name":"Ramen Ichi","formatted_address":"Tokyo",
					"formatted_phone_number":"03-0000-0000","website":"https://ramen.example",
					"rating":4.2,
					"opening_hours":{"weekday_text":["Mon: 11-22","Tue: 11-22"]},
					"photos":[{"photo_reference":"ref-1"},{"photo_reference":"ref-2"}]
				}}`))
			default:
				_, _ = w.Write([]byte(`{"status":"OK","result":{"place_id":"p2","name":"Cafe Ni"}}`))
			}
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	f, err := New("key", 15, "ja", WithBaseURL(server.URL))
	require.NoError(t, err)

	places, err := f.NearbyRestaurants(context.Background(), 35, 139)
	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	assert.Equal(t, "p1", first.ID)
	assert.Equal(t, "Ramen Ichi", first.Name)
	assert.Equal(t, "Tokyo", first.Address)
	assert.Equal(t, "03-0000-0000", first.PhoneNumber)
	assert.InDelta(t, 4.2, first.Rating, 1e-6)
	assert.Equal(t, []string{"Mon: 11-22", "Tue: 11-22"}, first.OpeningHours)
	assert.Equal(t, []string{
		"https://maps.googleapis.com/maps/api/place/photo?key=key&maxwidth=400&photoreference=ref-1",
		"https://maps.googleapis.com/maps/api/place/photo?key=key&maxwidth=400&photoreference=ref-2",
	}, first.PhotoURLs)

	assert.Equal(t, "Cafe Ni", places[1].Name)
	assert.Empty(t, places[1].OpeningHours)
	assert.Empty(t, places[1].PhotoURLs)
}

func TestFinder_NearbyRestaurantsZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	t.Cleanup(server.Close)

	f, err := New("key", 15, "ja", WithBaseURL(server.URL))
	require.NoError(t, err)

	places, err := f.NearbyRestaurants(context.Background(), 35, 139)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestFinder_NearbyRestaurantsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	}))
	t.Cleanup(server.Close)

	f, err := New("key", 15, "ja", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = f.NearbyRestaurants(context.Background(), 35, 139)
	var upErr *model.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "places", upErr.Service)
}
