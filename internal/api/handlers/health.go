package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"drone-vision-go/internal/config"
	"drone-vision-go/internal/metrics"
)

// HealthHandler serves the index status page and the liveness probe.
type HealthHandler struct {
	cfg     *config.Config
	store   *config.Store
	tracker *metrics.Tracker
}

func NewHealthHandler(cfg *config.Config, store *config.Store, tracker *metrics.Tracker) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: store, tracker: tracker}
}

// Index godoc
// @Summary Service status overview
// @Description Returns service identity, uptime, performance counters and the active runtime configuration
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Index(c *gin.Context) {
	snap := h.tracker.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":         "Drone Vision Backend Running",
		"version":        h.cfg.Version,
		"model":          h.cfg.ModelName,
		"uptime_seconds": round2(snap.Uptime.Seconds()),
		"performance": gin.H{
			"total_requests":            snap.TotalRequests,
			"total_frames_processed":    snap.TotalFrames,
			"average_fps":               round2(snap.FPSMean),
			"average_inference_time_ms": millis(snap.AvgInference),
			"error_count":               snap.ErrorCount,
		},
		"config": h.store.Get(),
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"worker_id": h.cfg.WorkerID,
		"timestamp": time.Now().Format(time.RFC3339Nano),
	})
}
