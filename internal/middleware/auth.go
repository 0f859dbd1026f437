package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// TokenVerifier defines the interface for token validation
type TokenVerifier interface {
	Verify(token string) (*model.TokenClaims, error)
}

// ClaimsKey is the context key for verified token claims
const ClaimsKey contextKey = "claims"

// Auth returns a middleware that requires a valid bearer token. Verified
// claims are placed in the request context for handlers downstream.
func Auth(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := verifyRequest(verifier, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly returns a middleware that requires a valid bearer token whose
// claims carry the admin flag. A valid non-admin token gets 403, any token
// failure gets 401.
func AdminOnly(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := verifyRequest(verifier, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}

			if !claims.IsAdmin {
				model.NewForbiddenError("admin privileges required").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyRequest(verifier TokenVerifier, r *http.Request) (*model.TokenClaims, *model.ProblemDetails) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, model.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, model.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := verifier.Verify(parts[1])
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, model.NewUnauthorizedError("token expired")
		}
		return nil, model.NewUnauthorizedError("invalid token")
	}
	return claims, nil
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the verified token claims from context
func GetClaims(ctx context.Context) *model.TokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*model.TokenClaims); ok {
		return claims
	}
	return nil
}
