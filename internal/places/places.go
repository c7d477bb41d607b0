// Package places finds restaurants near a coordinate with the Google Maps
// Places API.
package places

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/dtroode/gourmet-server/internal/model"
)

const (
	serviceName   = "places"
	photoURL      = "https://maps.googleapis.com/maps/api/place/photo"
	photoMaxWidth = "400"
)

var _ model.PlaceFinder = (*Finder)(nil)

// Finder is a model.PlaceFinder backed by the Places API.
type Finder struct {
	client   *maps.Client
	apiKey   string
	radius   uint
	language string
}

// Option configures a Finder.
type Option func(*options)

type options struct {
	clientOpts []maps.ClientOption
}

// WithBaseURL points the client at another API host.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.clientOpts = append(o.clientOpts, maps.WithBaseURL(baseURL))
	}
}

// New creates a Finder searching within radius meters, answering in language.
func New(apiKey string, radius uint, language string, opts ...Option) (*Finder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("maps api key required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, o.clientOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Finder{
		client:   client,
		apiKey:   apiKey,
		radius:   radius,
		language: language,
	}, nil
}

// NearbyRestaurants runs a nearby search and fetches the details of every
// result.
func (f *Finder) NearbyRestaurants(ctx context.Context, lat, lng float64) ([]model.Place, error) {
	resp, err := f.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   f.radius,
		Type:     maps.PlaceTypeRestaurant,
		Language: f.language,
	})
	if err != nil {
		return nil, &model.UpstreamError{Service: serviceName, Err: fmt.Errorf("nearby search: %w", err)}
	}

	places := make([]model.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		details, err := f.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
			PlaceID:  r.PlaceID,
			Language: f.language,
		})
		if err != nil {
			return nil, &model.UpstreamError{Service: serviceName, Err: fmt.Errorf("place details %s: %w", r.PlaceID, err)}
		}
		places = append(places, f.toPlace(r.PlaceID, details))
	}

	return places, nil
}

func (f *Finder) toPlace(id string, d maps.PlaceDetailsResult) model.Place {
	p := model.Place{
		ID:          id,
		Name:        d.Name,
		Address:     d.FormattedAddress,
		PhoneNumber: d.FormattedPhoneNumber,
		Website:     d.Website,
		Rating:      d.Rating,
	}
	if d.OpeningHours != nil {
		p.OpeningHours = d.OpeningHours.WeekdayText
	}
	for _, ph := range d.Photos {
		if ph.PhotoReference == "" {
			continue
		}
		p.PhotoURLs = append(p.PhotoURLs, f.PhotoURL(ph.PhotoReference))
	}
	return p
}

// PhotoURL builds the public URL of a place photo reference.
func (f *Finder) PhotoURL(reference string) string {
	q := url.Values{}
	q.Set("maxwidth", photoMaxWidth)
	q.Set("photoreference", reference)
	q.Set("key", f.apiKey)
	return photoURL + "?" + q.Encode()
}
