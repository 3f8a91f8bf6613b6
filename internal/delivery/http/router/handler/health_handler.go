package handler

import (
	"net/http"

	"shopapi/config"
	"shopapi/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	serviceName string
	env         string
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		serviceName: cfg.Env.ServiceName,
		env:         cfg.Env.Env,
	}
}

// HealthCheck answers liveness probes.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.serviceName,
		"env":     h.env,
		"status":  "ok",
	}, "")
}
