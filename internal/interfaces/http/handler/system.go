package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger checks database connectivity
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SystemHandler serves health and informational endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	name      string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, name string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		name:      name,
		startTime: time.Now(),
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Database string `json:"database"`
}

// Health handles GET /health. It answers 503 when the database is unreachable.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:   "healthy",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Database: "ok",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Status handles GET /status
func (h *SystemHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"message":    h.name + " is running successfully.",
		"uptime":     time.Since(h.startTime).Round(time.Second).String(),
		"go_version": runtime.Version(),
	})
}

// About handles GET /about
func (h *SystemHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is the " + h.name + ", designed to manage client policies and claims."})
}

// Contact handles GET /contact
func (h *SystemHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Contact us at support@insuranceapp.com or call 1-800-INSURE."})
}

// Help handles GET /help
func (h *SystemHandler) Help(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Visit our help center or reach out to our support team for assistance."})
}
