package context

import (
	"context"
	"strings"
)

type accessTokenKey struct{}

// Manager stores request scoped credentials in a context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAccessTokenToContext returns a copy of ctx carrying the photo library access token.
func (m *Manager) SetAccessTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// GetAccessTokenFromContext returns the access token and whether a non-empty one was set.
func (m *Manager) GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(string)
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return token, true
}
