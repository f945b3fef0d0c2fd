package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"drone-vision-go/internal/config"
	"drone-vision-go/internal/metrics"
)

// MetricsHandler serves the telemetry endpoints.
type MetricsHandler struct {
	store    *config.Store
	tracker  *metrics.Tracker
	exporter *metrics.Exporter
}

func NewMetricsHandler(store *config.Store, tracker *metrics.Tracker, exporter *metrics.Exporter) *MetricsHandler {
	return &MetricsHandler{store: store, tracker: tracker, exporter: exporter}
}

// Metrics godoc
// @Summary Rolling performance telemetry
// @Description Returns uptime, cumulative processing averages, the rolling FPS window and the active configuration
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	snap := h.tracker.Snapshot()

	var errorRate float64
	if snap.TotalRequests > 0 {
		errorRate = round2(float64(snap.ErrorCount) / float64(snap.TotalRequests) * 100)
	}

	c.JSON(http.StatusOK, gin.H{
		"system_metrics": gin.H{
			"uptime_seconds": round2(snap.Uptime.Seconds()),
			"uptime_hours":   round2(snap.Uptime.Hours()),
			"start_time":     snap.StartTime.Format(time.RFC3339Nano),
			"current_time":   time.Now().Format(time.RFC3339Nano),
		},
		"processing_metrics": gin.H{
			"total_requests":                snap.TotalRequests,
			"total_frames_processed":        snap.TotalFrames,
			"average_inference_time_ms":     millis(snap.AvgInference),
			"average_preprocessing_time_ms": millis(snap.AvgPreprocess),
			"error_count":                   snap.ErrorCount,
			"error_rate":                    errorRate,
		},
		"performance_metrics": gin.H{
			"average_fps": round2(snap.FPSMean),
			"min_fps":     round2(snap.FPSMin),
			"max_fps":     round2(snap.FPSMax),
			"fps_samples": snap.FPSSamples,
		},
		"configuration": h.store.Get(),
	})
}

// Prometheus exposes the same counters in Prometheus text format.
func (h *MetricsHandler) Prometheus() http.Handler {
	return h.exporter.Handler()
}
