package utils

import (
	"errors"
	"net/http"

	"trackify/internal/models"

	"github.com/labstack/echo/v4"
)

// RespondWithJSON writes payload as a JSON response with the given status.
func RespondWithJSON(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, payload)
}

// RespondWithError writes a models.ErrorResponse with the given status.
func RespondWithError(c echo.Context, status int, message string) error {
	return c.JSON(status, models.ErrorResponse{Message: message})
}

// HandleServiceError maps known service errors to HTTP responses and
// falls back to a 500 for anything unexpected.
func HandleServiceError(c echo.Context, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return RespondWithError(c, http.StatusNotFound, "resource not found")
	}
	return RespondWithError(c, http.StatusInternalServerError, "internal server error")
}
