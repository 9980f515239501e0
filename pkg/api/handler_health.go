package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/pythmata/pkg/database"
	"github.com/codeready-toolchain/pythmata/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := map[string]any{
		"status":  "healthy",
		"version": version.Full(),
	}

	dbHealth, err := database.Health(ctx, s.dbClient.DB())
	resp["database"] = dbHealth
	if err != nil {
		resp["status"] = "unhealthy"
		resp["error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	if err := s.fast.Raw().Ping(ctx).Err(); err != nil {
		resp["status"] = "unhealthy"
		resp["redis"] = "unreachable"
		resp["error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	resp["redis"] = "ok"

	return c.JSON(http.StatusOK, resp)
}
