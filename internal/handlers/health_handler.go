package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zspldev/Webapp-NotesMate/pkg/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Uptime    string            `json:"uptime"`
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Index handles GET /, the root liveness probe the frontend pings.
func (h *HealthHandler) Index(c *gin.Context) {
	utils.MessageJSON(c, "NotesMate API is running")
}

// Health handles GET /health with database connectivity included.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"database": h.checkDatabase(c.Request.Context()),
	}

	status := "healthy"
	statusCode := http.StatusOK
	if services["database"] != "healthy" {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	utils.JSONResponse(c, statusCode, HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
		Uptime:    time.Since(startTime).String(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) string {
	if h.db == nil {
		return "not_configured"
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return "error"
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return "unhealthy"
	}
	return "healthy"
}

var startTime = time.Now()
