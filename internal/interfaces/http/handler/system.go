package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/finsight/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler serves the service metadata endpoints under /system.
type SystemHandler struct {
	BaseHandler
	serviceName string
	version     string
	startTime   time.Time
}

// NewSystemHandler creates a SystemHandler reporting the given service
// name and version.
func NewSystemHandler(serviceName, version string) *SystemHandler {
	return &SystemHandler{
		serviceName: serviceName,
		version:     version,
		startTime:   time.Now(),
	}
}

// SystemInfoResponse describes the running service.
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name       string `json:"name" example:"FinSight API"`
	Version    string `json:"version" example:"1.0.0"`
	GoVersion  string `json:"go_version" example:"go1.25.5"`
	Goroutines int    `json:"goroutines" example:"12"`
	Uptime     string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get service information
// @Description  Returns service name, version, runtime details, and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:       h.serviceName,
		Version:    h.version,
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Liveness check that answers without touching any dependency
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[any]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message":   "pong",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}
