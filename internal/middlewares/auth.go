package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/projecthub/backend/internal/jwt"
	"github.com/projecthub/backend/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type claimsKey struct{}

// SetClaimsToContext stores verified claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves claims stored by AuthMiddleware.
// Returns nil if the request was not authenticated.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context. Expired tokens get a distinct 401 carrying the expiry
// so clients can prompt a re-login; malformed tokens are rejected with 403.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("access attempt failed: no token provided", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Access denied. No token provided.",
				})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				var expErr *jwt.ExpiredError
				if errors.As(err, &expErr) {
					logger.Log.Infow("access attempt failed: token expired", "expiredAt", expErr.ExpiredAt)
					w.WriteHeader(http.StatusUnauthorized)
					json.NewEncoder(w).Encode(map[string]any{
						"error":     "Token expired. Please log in again.",
						"expiredAt": expErr.ExpiredAt,
					})
					return
				}
				logger.Log.Infow("access attempt failed: invalid token", "err", err)
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Invalid token.",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

// RequireRole rejects authenticated requests whose role is outside the
// allow-list. Must run after AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Access denied. No token provided.",
				})
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				logger.Log.Infow("access denied: insufficient permissions",
					"userID", claims.UserID, "role", claims.Role, "required", roles)
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Insufficient permissions.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
