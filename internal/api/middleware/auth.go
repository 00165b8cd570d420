// Package middleware provides the HTTP middleware for the Trackify API.
package middleware

import (
	"net/http"

	"trackify/internal/models"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth validates the X-API-Key header against a static key list.
// An empty key list disables auth and lets every request through, which is
// the default for local single-operator deployments.
func APIKeyAuth(keys []string) echo.MiddlewareFunc {
	valid := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k != "" {
			valid[k] = true
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(valid) == 0 {
				return next(c)
			}

			apiKey := c.Request().Header.Get("X-API-Key")
			if apiKey == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "missing X-API-Key header"})
			}
			if !valid[apiKey] {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "invalid API key"})
			}
			return next(c)
		}
	}
}
