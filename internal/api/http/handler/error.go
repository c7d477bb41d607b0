package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

func handleError(w http.ResponseWriter, err error, log *logger.Logger) {
	var (
		upstream    *model.UpstreamError
		persistence *model.PersistenceError
	)

	switch {
	case errors.Is(err, model.ErrMissingAccessToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrMissingUserID), errors.Is(err, model.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &upstream):
		log.Error("upstream call failed", "service", upstream.Service, "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: upstream.Service + " request failed"})
	case errors.As(err, &persistence):
		log.Error("persistence failed", "op", persistence.Op, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	default:
		log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
