package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: a present identity proves the
// middleware ran and the role is one of the two known values.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get("identity").(domain.Identity)
	if !ok || ident.Email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return ident, nil
}

// ctxToken returns the raw session token, used by logout.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}
