package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate requires a bearer token and hands it to the handlers through the context.
// The token is the user's photo library access token; it is not verified here.
type Authenticate struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a bearer token with 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.logger.Debug("request without access token", "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": model.ErrMissingAccessToken.Error()})
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetAccessTokenToContext(r.Context(), token)))
	})
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
