package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// tokenFromRequest pulls the raw session token from the Authorization header
// (Bearer scheme) or the named cookie. Used by the refresh endpoint, which
// must accept expired tokens and therefore sits outside the auth middleware.
func tokenFromRequest(c echo.Context, cookieName string) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}

	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}
	}

	return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
}
