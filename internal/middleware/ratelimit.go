package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/syemed/intake/internal/security"
)

// RateLimit throttles submissions per client ip with the sliding-window
// limiter. Denied requests get 429 with a Retry-After hint in seconds.
func RateLimit(limiter *security.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter := limiter.Allow(c.RealIP(), time.Now().UTC())
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Demasiadas solicitudes, intente nuevamente más tarde")
			}
			return next(c)
		}
	}
}
