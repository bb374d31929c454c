package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/syemed/intake/internal/domain/auth"
)

// ClaimsContextKey is the echo context key the verified jwt claims are stored under.
const ClaimsContextKey = "claims"

// Authorize rejects requests without a valid bearer token and exposes the
// verified claims to downstream handlers.
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}
