package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler answers 200 {"status":"ok"} or 503 {"status":"unavailable"}.
func HealthHandler(hc HealthChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if !hc.Healthy(ctx) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
