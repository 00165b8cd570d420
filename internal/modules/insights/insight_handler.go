package insights

import (
	"net/http"

	"trackify/pkg/utils"

	"github.com/labstack/echo/v4"
)

// InsightResponse wraps the advisory text for the dashboard.
type InsightResponse struct {
	Insights string `json:"insights"`
}

// Handler exposes the insight adapter over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler constructs a Handler with the provided service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetInsights handles GET /api/insights requests with the current text.
func (h *Handler) GetInsights(c echo.Context) error {
	return utils.RespondWithJSON(c, http.StatusOK, InsightResponse{Insights: h.svc.Current()})
}

// RefreshInsights handles POST /api/insights/refresh requests. It blocks
// until the new text (or the fallback) is available.
func (h *Handler) RefreshInsights(c echo.Context) error {
	text := h.svc.Refresh(c.Request().Context())
	return utils.RespondWithJSON(c, http.StatusOK, InsightResponse{Insights: text})
}
