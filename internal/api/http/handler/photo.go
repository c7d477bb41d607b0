package handler

import (
	"net/http"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Photo serves the ingestion and status endpoints.
type Photo struct {
	ingester       Ingester
	status         StatusMarker
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewPhoto(ingester Ingester, status StatusMarker, contextManager model.ContextManager, logger *logger.Logger) *Photo {
	return &Photo{
		ingester:       ingester,
		status:         status,
		contextManager: contextManager,
		logger:         logger,
	}
}

type userRequest struct {
	UserID string `json:"userId"`
}

type classifyResponse struct {
	Message  string              `json:"message"`
	Outcome  model.IngestOutcome `json:"outcome"`
	Accepted int                 `json:"accepted"`
}

// ClassifyPhotos handles POST /classifyPhotos.
func (h *Photo) ClassifyPhotos(w http.ResponseWriter, r *http.Request) {
	token, ok := h.contextManager.GetAccessTokenFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingAccessToken, h.logger)
		return
	}

	var req userRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if req.UserID == "" {
		handleError(w, model.ErrMissingUserID, h.logger)
		return
	}

	result, err := h.ingester.Run(r.Context(), req.UserID, token)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{
		Message:  result.Outcome.Message(),
		Outcome:  result.Outcome,
		Accepted: result.Accepted,
	})
}

// UpdateUserStatus handles POST /updateUserStatus.
func (h *Photo) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if req.UserID == "" {
		handleError(w, model.ErrMissingUserID, h.logger)
		return
	}

	if err := h.status.MarkReady(r.Context(), req.UserID); err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User status updated successfully"})
}
