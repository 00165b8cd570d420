package fleet

import (
	"net/http"

	"trackify/internal/models"
	"trackify/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Handler exposes HTTP endpoints for device management.
type Handler struct {
	svc ServiceInterface
}

// NewHandler constructs a Handler with the provided service.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// GetFleet returns the entire fleet with current telemetry.
func (h *Handler) GetFleet(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, h.svc.ListDevices())
}

// GetDevice handles GET /api/fleet/:deviceId requests.
func (h *Handler) GetDevice(c echo.Context) error {
	dev, err := h.svc.GetDevice(c.Param("deviceId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, dev)
}

// UpdateDevice handles PATCH /api/fleet/:deviceId requests for rename,
// sleep-mode toggle and speed-limit changes.
func (h *Handler) UpdateDevice(c echo.Context) error {
	var req models.DeviceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := utils.GetValidator().Validate(req); err != nil {
		return utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	}

	dev, err := h.svc.UpdateDevice(c.Param("deviceId"), req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, dev)
}

// ToggleSOS handles POST /api/fleet/:deviceId/sos requests and returns the
// device with its new status.
func (h *Handler) ToggleSOS(c echo.Context) error {
	dev, err := h.svc.ToggleSOS(c.Param("deviceId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return utils.RespondWithJSON(c, http.StatusOK, dev)
}

// GetSummary handles GET /api/fleet/summary requests for the KPI row.
func (h *Handler) GetSummary(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, h.svc.Summary())
}
