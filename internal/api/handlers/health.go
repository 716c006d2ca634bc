package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Pinger is implemented by the preference store
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db       Pinger
	provider string
	model    string
}

// NewHealthHandler creates a health handler. db may be nil when persistence is disabled.
func NewHealthHandler(db Pinger, provider, model string) *HealthHandler {
	return &HealthHandler{db: db, provider: provider, model: model}
}

// HealthCheck returns the health status of the API.
// A failing database is reported but does not fail the check.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "disabled"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "unreachable"
		} else {
			dbStatus = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"provider": h.provider,
		"model":    h.model,
		"database": dbStatus,
	})
}
