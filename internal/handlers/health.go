package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/folio/internal/datastore"
)

// HealthHandler exposes the data load status to operators.
type HealthHandler struct {
	loader *datastore.Loader
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(loader *datastore.Loader) *HealthHandler {
	return &HealthHandler{loader: loader}
}

// HealthGet answers 200 when works.json loads and 503 otherwise. A profile
// fallback is reported but does not fail the check.
func (h *HealthHandler) HealthGet(c echo.Context) error {
	store, ok := h.loader.LoadWithStatus(c.Request().Context())
	resp := HealthResponse{
		Status:         "ok",
		Works:          len(store.Works()),
		DefaultProfile: store.UsingDefaultProfile(),
	}
	if !ok {
		resp.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
