package handler

import (
	"runtime"
	"time"

	"github.com/fiberops/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// HealthHandler handles health and readiness endpoints
type HealthHandler struct {
	BaseHandler
	db        *persistence.Database
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers health routes on the given group
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/health/ready", h.Ready)
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @Summary      Liveness check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ready godoc
// @Summary      Readiness check
// @Description  Verifies the database connection is usable
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			h.InternalError(c, "Database is not reachable")
			return
		}
	}

	h.Success(c, HealthResponse{
		Status:    "ready",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
