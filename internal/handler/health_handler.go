package handler

import (
	"net/http"

	"github.com/KakonDebnath/bistro-boss-server/internal/dto"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/gin-gonic/gin"
)

const serviceName = "bistro-boss-server"

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	store   repository.Pinger
	storage string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store repository.Pinger, storage string) *HealthHandler {
	return &HealthHandler{store: store, storage: storage}
}

// Root answers the plain-text liveness probe
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Boss Is Running")
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: serviceName,
	})
}

// Ready checks if the store is reachable
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "not_ready",
			Service: serviceName,
			Storage: h.storage + ": disconnected",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Service: serviceName,
		Storage: h.storage + ": connected",
	})
}
