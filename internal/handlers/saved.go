package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/middlewares"
	"github.com/gradewatch/gradewatch/internal/models"
)

// SavedLister defines the interface that the service must implement.
type SavedLister interface {
	ListSaved(ctx context.Context, userID uuid.UUID) ([]models.SavedSearch, error)
}

// NewSavedHandler returns an HTTP handler that lists the user's saved
// searches, newest first, each annotated with an expired flag.
// @Summary List saved searches
// @Description Returns all of the current user's saved searches with their stored results, images, and freshness.
// @Tags cards
// @Produce json
// @Success 200 {array} models.SavedSearch "Saved searches"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/saved [get]
func NewSavedHandler(svc SavedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Unauthorized"})
			return
		}

		saved, err := svc.ListSaved(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(saved)
	}
}
