// Package metrics exposes lightweight operational counters in the
// Prometheus text format.
package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

var (
	SimulationTicks atomic.Int64
	AlertsRaised    atomic.Int64
	InsightRequests atomic.Int64
	InsightFailures atomic.Int64
	StreamClients   atomic.Int64
)

// Handle serves GET /metrics.
func Handle(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/plain; version=0.0.4")
	c.Response().WriteHeader(http.StatusOK)
	fmt.Fprintf(c.Response(), "trackify_simulation_ticks_total %d\n", SimulationTicks.Load())
	fmt.Fprintf(c.Response(), "trackify_alerts_raised_total %d\n", AlertsRaised.Load())
	fmt.Fprintf(c.Response(), "trackify_insight_requests_total %d\n", InsightRequests.Load())
	fmt.Fprintf(c.Response(), "trackify_insight_failures_total %d\n", InsightFailures.Load())
	fmt.Fprintf(c.Response(), "trackify_stream_clients %d\n", StreamClients.Load())
	return nil
}
