package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// PingHandler answers the client's connectivity check.
type PingHandler struct {
	message string
}

// NewPingHandler creates a PingHandler. The message is configurable via
// PING_MESSAGE and defaults to "pong".
func NewPingHandler(message string) *PingHandler {
	if message == "" {
		message = "pong"
	}
	return &PingHandler{message: message}
}

type pingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping handles GET /api/ping.
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, pingResponse{
		Message:   h.message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Demo handles GET /api/demo, a sample payload used by the landing page.
func (h *PingHandler) Demo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Hello from the DailyDone API",
	})
}
