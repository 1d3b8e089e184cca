package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/middlewares"
	"github.com/gradewatch/gradewatch/internal/services"
)

// ImageConfirmer defines the interface that the service must implement.
type ImageConfirmer interface {
	ConfirmImage(ctx context.Context, userID uuid.UUID, cardName, imageURL string) error
}

// ConfirmImageRequest represents the body for confirming a card image
// swagger:model ConfirmImageRequest
type ConfirmImageRequest struct {
	// Card name of the saved search
	// required: true
	// default: pikachu illustrator
	CardName string `json:"card_name"`

	// Image URL the user accepted
	// required: true
	// default: https://example.com/card.jpg
	ImageURL string `json:"image_url"`
}

// ConfirmImageResponse represents a successful confirmation
// swagger:model ConfirmImageResponse
type ConfirmImageResponse struct {
	// Always true on success
	OK bool `json:"ok"`
}

// NewConfirmImageHandler returns an HTTP handler that pins a user-accepted
// image on a saved search.
// @Summary Confirm a card image
// @Description Stores the given image URL on the saved search and marks it as user-confirmed. Price data is untouched.
// @Tags cards
// @Accept json
// @Produce json
// @Param confirmImageRequest body handlers.ConfirmImageRequest true "Image confirmation request"
// @Success 200 {object} handlers.ConfirmImageResponse "Image confirmed"
// @Failure 400 {object} handlers.SearchErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SearchErrorResponse "Saved search not found"
// @Security BearerAuth
// @Router /api/confirm_image [post]
func NewConfirmImageHandler(svc ImageConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ConfirmImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardName == "" || req.ImageURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Card name and image URL are required"})
			return
		}

		if err := svc.ConfirmImage(r.Context(), user.UserID, req.CardName, req.ImageURL); err != nil {
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
		json.NewEncoder(w).Encode(ConfirmImageResponse{OK: true})
	}
}
