package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type ctxKey string

const claimsCtxKey ctxKey = "claims"

func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedResponse(w, r, fmt.Errorf("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedResponse(w, r, fmt.Errorf("authorization header is malformed"))
			return
		}

		claims, err := app.authService.ParseAccessToken(parts[1])
		if err != nil {
			app.unauthorizedResponse(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsCtxKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *application) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := getClaims(r)
			if claims == nil {
				app.unauthorizedResponse(w, r, fmt.Errorf("missing credentials"))
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			app.forbiddenResponse(w, r)
		})
	}
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr)
			if !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func getClaims(r *http.Request) *domain.Claims {
	claims, _ := r.Context().Value(claimsCtxKey).(*domain.Claims)
	return claims
}

// tenantFromRequest resolves the authenticated user's tenant and own id from
// the token claims.
func tenantFromRequest(r *http.Request) (adminID, userID primitive.ObjectID, err error) {
	claims := getClaims(r)
	if claims == nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("missing credentials")
	}

	adminID, err = primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid admin id in token: %w", err)
	}

	userID, err = primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid user id in token: %w", err)
	}

	return adminID, userID, nil
}
