package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/ports"
)

// SessionCookie is the cookie browser clients carry the session token in.
// API clients may send the same token as a bearer header instead.
const SessionCookie = "session_token"

// contextIdentity is the echo context key the resolved identity is stored
// under. The role is stored separately so RBAC can check it without a type
// assertion on the full identity.
const (
	contextIdentity = "identity"
	contextRole     = "role"
	contextToken    = "session_token"
)

// Session resolves the request's session token and injects the identity into
// context. Requests without a valid session are rejected with 401.
func Session(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			ident, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired or invalid")
			}

			c.Set(contextIdentity, *ident)
			c.Set(contextRole, ident.Role)
			c.Set(contextToken, token)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
