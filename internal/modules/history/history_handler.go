package history

import (
	"net/http"

	"trackify/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler exposes the speed history over HTTP.
type Handler struct {
	log *Log
}

// NewHandler constructs a Handler backed by the given history.
func NewHandler(log *Log) *Handler {
	return &Handler{log: log}
}

// GetSpeedHistory handles GET /api/history/speed requests, oldest first.
func (h *Handler) GetSpeedHistory(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, h.log.Samples())
}
