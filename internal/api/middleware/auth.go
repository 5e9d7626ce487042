// Package middleware provides HTTP middleware for the API: authentication,
// rate limiting, and request logging.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/openhire/jobboard-api/internal/api/shared"
	"github.com/openhire/jobboard-api/internal/service"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// AuthMiddleware extracts and verifies the session token on protected
// routes, placing the resolved identity into the request context.
type AuthMiddleware struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(auth *service.AuthService, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		auth:   auth,
		logger: logger.With(slog.String("component", "auth_middleware")),
	}
}

// extractToken pulls the session token from the request: the session cookie
// first, then an Authorization bearer header as fallback.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Authenticate rejects requests without a valid session token and attaches
// the resolved identity to the context of those that pass.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"unauthenticated", "Authentication required")
			return
		}

		identity, err := m.auth.ResolveIdentity(r.Context(), token)
		if err != nil {
			m.logger.Debug("session rejected",
				slog.String("error", err.Error()),
				slog.String("path", r.URL.Path))
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"unauthenticated", "Authentication required")
			return
		}

		ctx := shared.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
