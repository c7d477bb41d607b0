package handler

import (
	"net/http"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
)

// Food serves single photo categorization.
type Food struct {
	categorizer FoodCategorizer
	logger      *logger.Logger
}

func NewFood(categorizer FoodCategorizer, logger *logger.Logger) *Food {
	return &Food{categorizer: categorizer, logger: logger}
}

type categorizeRequest struct {
	UserID  string `json:"userId"`
	PhotoID string `json:"photoId"`
	Photo   string `json:"photo"`
}

type categorizeResponse struct {
	Message  string             `json:"message"`
	Category model.FoodCategory `json:"category"`
}

// CategorizeFood handles POST /categorizeFood.
func (h *Food) CategorizeFood(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, err, h.logger)
		return
	}
	if req.UserID == "" {
		handleError(w, model.ErrMissingUserID, h.logger)
		return
	}

	category, err := h.categorizer.Categorize(r.Context(), req.UserID, req.PhotoID, req.Photo)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categorizeResponse{Message: "Photo categorized", Category: category})
}
