// Package handler exposes the HTTP handlers of the service.  Handlers are
// plain structs holding their dependencies so tests can construct them with
// arbitrary injected tables; no handler reaches for package-level state.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers the liveness probe at GET /.
type HealthHandler struct {
	Service string // human-readable service name used in the live message
}

// MessageResponse is the body of the health check and of every negative
// predict result.
type MessageResponse struct {
	Message string `json:"message"`
}

// Health reports that the service is up.  It always returns 200 regardless
// of the lookup table contents; a process that failed to load its dataset
// never reaches the point of serving this route.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: h.Service + " is live"})
}
