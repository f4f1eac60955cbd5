package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/notehub/notehub/internal/api/response"
	"github.com/notehub/notehub/internal/auth"
)

const userKey contextKey = "user"

// Auth is middleware that extracts the Authorization bearer token and
// resolves it to a User via the auth service. Every token problem, from a
// missing header to an expired signature, produces the same 401 so callers
// cannot probe for token state. Handlers behind this middleware only ever
// see the resolved User, never the raw token.
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			tokenString, ok := bearerToken(r)
			if !ok {
				unauthorized(w, requestID)
				return
			}

			user, err := authService.Resolve(r.Context(), tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					unauthorized(w, requestID)
					return
				}
				response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authentication failed", requestID)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the authenticated User from the request context.
func GetUser(ctx context.Context) *auth.User {
	if u, ok := ctx.Value(userKey).(*auth.User); ok {
		return u
	}
	return nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func unauthorized(w http.ResponseWriter, requestID string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	response.Err(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Could not validate credentials", requestID)
}
