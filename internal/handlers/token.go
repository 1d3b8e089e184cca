package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenRequest represents the body for token issuance
// swagger:model TokenRequest
type TokenRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// TokenResponse represents a successful token response
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT access token
	AccessToken string `json:"access_token"`

	// Token type, always "bearer"
	// default: bearer
	TokenType string `json:"token_type"`
}

// TokenErrorResponse represents an error response for token issuance
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	// default: Invalid username or password
	Error string `json:"error"`
}

// NewTokenHandler returns an HTTP handler that exchanges credentials for a JWT.
// @Summary Issue an access token
// @Description Validates the username and password and returns a bearer token for the protected API.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body handlers.TokenRequest true "Credentials"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 400 {object} handlers.TokenErrorResponse "Invalid request"
// @Failure 401 {object} handlers.TokenErrorResponse "Invalid credentials"
// @Router /token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		username, password, err := decodeCredentials(r)
		if err != nil || username == "" || password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{
				Error: "Username and password are required",
			})
			return
		}

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist),
				errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Invalid username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
