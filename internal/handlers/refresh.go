package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/middlewares"
	"github.com/gradewatch/gradewatch/internal/models"
	"github.com/gradewatch/gradewatch/internal/services"
)

// CardRefresher defines the interface that the service must implement.
type CardRefresher interface {
	Refresh(ctx context.Context, userID uuid.UUID, cardName string) (models.GradeReport, string, error)
}

// RefreshRequest represents the body for refreshing a saved search
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Card name of the saved search
	// required: true
	// default: pikachu illustrator
	CardName string `json:"card_name"`
}

// RefreshResponse represents a successful refresh response
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Always true on success
	OK bool `json:"ok"`

	// Per-grade average prices after the refresh
	Avg map[string]float64 `json:"avg"`

	// Resolved image URL, may be empty
	Image string `json:"image"`
}

// NewRefreshHandler returns an HTTP handler that re-runs the pipeline for a
// saved search using its stored region.
// @Summary Refresh a saved search
// @Description Re-fetches prices for a card the user has already searched, reusing the region stored with the record.
// @Tags cards
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh request"
// @Success 200 {object} handlers.RefreshResponse "Refreshed averages"
// @Failure 400 {object} handlers.SearchErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SearchErrorResponse "Saved search not found"
// @Security BearerAuth
// @Router /api/refresh [post]
func NewRefreshHandler(svc CardRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Unauthorized"})
			return
		}

		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Card name is required"})
			return
		}

		report, image, err := svc.Refresh(r.Context(), user.UserID, req.CardName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSearchNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Saved search not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RefreshResponse{
			OK:    true,
			Avg:   report.Avg,
			Image: image,
		})
	}
}
