package api

import (
	"net/http"

	"trackify/internal/api/middleware"
	"trackify/internal/metrics"
	"trackify/internal/modules/alerts"
	"trackify/internal/modules/fleet"
	"trackify/internal/modules/history"
	"trackify/internal/modules/insights"
	"trackify/internal/modules/mapview"
	"trackify/internal/modules/stream"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all the API endpoints for the application. Reads are
// open; mutating routes go through the API-key middleware (a no-op when no
// keys are configured).
func SetupRoutes(
	e *echo.Echo,
	fleetHandler *fleet.Handler,
	alertHandler *alerts.Handler,
	historyHandler *history.Handler,
	insightHandler *insights.Handler,
	mapHandler *mapview.Handler,
	hub *stream.Hub,
	apiKeys []string,
) {
	writeAuth := middleware.APIKeyAuth(apiKeys)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.Handle)

	apiGroup := e.Group("/api")
	{
		// Fleet telemetry and device management.
		apiGroup.GET("/fleet", fleetHandler.GetFleet)
		apiGroup.GET("/fleet/summary", fleetHandler.GetSummary)
		apiGroup.GET("/fleet/:deviceId", fleetHandler.GetDevice)
		apiGroup.PATCH("/fleet/:deviceId", fleetHandler.UpdateDevice, writeAuth)
		apiGroup.POST("/fleet/:deviceId/sos", fleetHandler.ToggleSOS, writeAuth)

		// Alerts and the velocity chart feed.
		apiGroup.GET("/alerts", alertHandler.ListAlerts)
		apiGroup.GET("/history/speed", historyHandler.GetSpeedHistory)

		// AI advisory.
		apiGroup.GET("/insights", insightHandler.GetInsights)
		apiGroup.POST("/insights/refresh", insightHandler.RefreshInsights, writeAuth)

		// Map markers and selection.
		apiGroup.GET("/map", mapHandler.GetMap)
		apiGroup.PUT("/map/selection", mapHandler.SetSelection, writeAuth)
	}

	// Live fleet feed.
	e.GET("/ws/fleet", hub.HandleFleet)
}
