package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/gourmet-server/internal/model"
)

const (
	serviceName      = "photos"
	searchPath       = "/v1/mediaItems:search"
	downloadSuffix   = "=d"
	maxDownloadBytes = 32 << 20
	defaultTimeout   = 10 * time.Second
)

var _ model.PhotoLibrary = (*Client)(nil)

// Client provides access to the photo library search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a photo library client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("photos base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type searchRequest struct {
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	MediaItems    []mediaItem `json:"mediaItems"`
	NextPageToken string      `json:"nextPageToken"`
}

type mediaItem struct {
	ID            string        `json:"id"`
	Filename      string        `json:"filename"`
	MimeType      string        `json:"mimeType"`
	BaseURL       string        `json:"baseUrl"`
	MediaMetadata mediaMetadata `json:"mediaMetadata"`
}

type mediaMetadata struct {
	CreationTime string `json:"creationTime"`
}

// Search fetches one page of media items.
func (c *Client) Search(ctx context.Context, accessToken string, pageSize int, pageToken string) (model.MediaPage, error) {
	body, err := json.Marshal(searchRequest{PageSize: pageSize, PageToken: pageToken})
	if err != nil {
		return model.MediaPage{}, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return model.MediaPage{}, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.MediaPage{}, &model.UpstreamError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.MediaPage{}, &model.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("search returned %s", strings.TrimSpace(readSnippet(resp.Body))),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.MediaPage{}, &model.UpstreamError{
			Service: serviceName,
			Err:     fmt.Errorf("failed to decode search response: %w", err),
		}
	}

	page := model.MediaPage{
		Items:         make([]model.MediaItem, 0, len(payload.MediaItems)),
		NextPageToken: payload.NextPageToken,
	}
	for _, it := range payload.MediaItems {
		page.Items = append(page.Items, model.MediaItem{
			ID:           it.ID,
			Filename:     it.Filename,
			MimeType:     it.MimeType,
			BaseURL:      it.BaseURL,
			CreationTime: it.MediaMetadata.CreationTime,
		})
	}
	return page, nil
}

// Download fetches the original bytes of an item.
func (c *Client) Download(ctx context.Context, accessToken string, item model.MediaItem) ([]byte, error) {
	if item.BaseURL == "" {
		return nil, fmt.Errorf("media item %s has no base url", item.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.BaseURL+downloadSuffix, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download media item: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read media item: %w", err)
	}
	if len(data) > maxDownloadBytes {
		return nil, fmt.Errorf("media item %s exceeds %d bytes", item.ID, maxDownloadBytes)
	}
	return data, nil
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
