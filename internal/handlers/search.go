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

// CardSearcher defines the interface that the service must implement.
type CardSearcher interface {
	Search(ctx context.Context, userID uuid.UUID, cardName, region string) (models.GradeReport, string, error)
}

// SearchRequest represents the body for a card search
// swagger:model SearchRequest
type SearchRequest struct {
	// Card name to search for
	// required: true
	// default: pikachu illustrator
	CardName string `json:"card_name"`

	// Marketplace region, AU or US
	// default: AU
	Region string `json:"region"`
}

// SearchResponse represents a successful search response
// swagger:model SearchResponse
type SearchResponse struct {
	// Always true on success
	OK bool `json:"ok"`

	// Per-grade averages and sampled prices
	Result models.GradeReport `json:"result"`

	// Resolved image URL, may be empty
	Image string `json:"image"`
}

// SearchErrorResponse represents an error response for card operations
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Card name is required
	Error string `json:"error"`
}

// validRegion reports whether the region is one the pipeline supports.
func validRegion(region string) bool {
	return region == models.RegionAU || region == models.RegionUS
}

// NewSearchHandler returns an HTTP handler that runs the price pipeline for a
// card and saves the result for the current user.
// @Summary Search card prices
// @Description Fetches marketplace listings, classifies them by grade, averages prices per grade, resolves an image, and saves the result.
// @Tags cards
// @Accept json
// @Produce json
// @Param searchRequest body handlers.SearchRequest true "Card search request"
// @Success 200 {object} handlers.SearchResponse "Aggregated result"
// @Failure 400 {object} handlers.SearchErrorResponse "Invalid request"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /api/search [post]
func NewSearchHandler(svc CardSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.CurrentUser(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.CardName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Card name is required"})
			return
		}

		if req.Region == "" {
			req.Region = models.RegionAU
		}
		if !validRegion(req.Region) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Region must be AU or US"})
			return
		}

		report, image, err := svc.Search(r.Context(), user.UserID, req.CardName, req.Region)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{
			OK:     true,
			Result: report,
			Image:  image,
		})
	}
}
