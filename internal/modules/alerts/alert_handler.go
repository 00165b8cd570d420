package alerts

import (
	"net/http"

	"trackify/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler exposes the alert log over HTTP.
type Handler struct {
	log *Log
}

// NewHandler constructs a Handler backed by the given log.
func NewHandler(log *Log) *Handler {
	return &Handler{log: log}
}

// ListAlerts handles GET /api/alerts requests, newest first.
func (h *Handler) ListAlerts(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, h.log.Query())
}
