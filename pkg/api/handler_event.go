package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// publishMessageHandler handles POST /api/v1/messages: delivers a message to
// every waiting subscription with a matching name/correlation.
func (s *Server) publishMessageHandler(c *echo.Context) error {
	return s.publishEvent(c, s.fastPublish("message"))
}

// publishSignalHandler handles POST /api/v1/signals.
func (s *Server) publishSignalHandler(c *echo.Context) error {
	return s.publishEvent(c, s.fastPublish("signal"))
}

type publishFunc func(c *echo.Context, req PublishEventRequest) error

func (s *Server) fastPublish(kind string) publishFunc {
	return func(c *echo.Context, req PublishEventRequest) error {
		if kind == "signal" {
			return s.fast.PublishSignal(c.Request().Context(), req.Name, req.CorrelationValue, req.Payload)
		}
		return s.fast.PublishMessage(c.Request().Context(), req.Name, req.CorrelationValue, req.Payload)
	}
}

func (s *Server) publishEvent(c *echo.Context, publish publishFunc) error {
	var req PublishEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if err := publish(c, req); err != nil {
		return mapEngineError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "published"})
}
