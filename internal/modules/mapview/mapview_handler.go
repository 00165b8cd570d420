package mapview

import (
	"net/http"

	"trackify/pkg/utils"

	"github.com/labstack/echo/v4"
)

// SelectionRequest names the device to center on; empty clears selection.
type SelectionRequest struct {
	DeviceID string `json:"deviceId"`
}

// Handler exposes the map view over HTTP.
type Handler struct {
	view *View
}

// NewHandler constructs a Handler with the provided view.
func NewHandler(view *View) *Handler {
	return &Handler{view: view}
}

// GetMap handles GET /api/map requests.
func (h *Handler) GetMap(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, h.view.Snapshot())
}

// SetSelection handles PUT /api/map/selection requests.
func (h *Handler) SetSelection(c echo.Context) error {
	var req SelectionRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := h.view.Select(req.DeviceID); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, h.view.Snapshot())
}
