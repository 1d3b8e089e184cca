package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gradewatch/gradewatch/internal/jwt"
	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject to a stored user.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

type userContextKey struct{}

// CurrentUser returns the authenticated user stored by AuthMiddleware, or
// nil outside an authenticated request.
func CurrentUser(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey{}).(*models.UserDB)
	return user
}

// WithUser returns a context carrying the given user as the current user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// AuthMiddleware validates the bearer token and resolves it to an existing
// user, storing the user in the request context. A missing token, malformed
// token, expired token, and unknown user all produce the same opaque 401.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	unauthorized := func(w http.ResponseWriter, reason string, err error) {
		logger.Log.Errorw("authorization failed", "reason", reason, "err", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized(w, "missing token", err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				unauthorized(w, "invalid token", err)
				return
			}

			user, err := users.GetByUsername(ctx, claims.Username)
			if err != nil {
				unauthorized(w, "user lookup failed", err)
				return
			}
			if user == nil {
				unauthorized(w, "unknown user", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
