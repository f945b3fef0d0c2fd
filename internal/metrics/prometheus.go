package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter exposes the tracker counters in Prometheus exposition format on a
// private registry, alongside the JSON /metrics endpoint.
type Exporter struct {
	tracker  *Tracker
	registry *prometheus.Registry
}

func NewExporter(tracker *Tracker) *Exporter {
	e := &Exporter{
		tracker:  tracker,
		registry: prometheus.NewRegistry(),
	}
	e.register()
	return e
}

func (e *Exporter) register() {
	gauges := []struct {
		name string
		help string
		read func(Snapshot) float64
	}{
		{"vision_requests_total", "Total HTTP requests received",
			func(s Snapshot) float64 { return float64(s.TotalRequests) }},
		{"vision_frames_processed_total", "Total frames run through the pipeline",
			func(s Snapshot) float64 { return float64(s.TotalFrames) }},
		{"vision_errors_total", "Total pipeline errors",
			func(s Snapshot) float64 { return float64(s.ErrorCount) }},
		{"vision_uptime_seconds", "Process uptime in seconds",
			func(s Snapshot) float64 { return s.Uptime.Seconds() }},
		{"vision_avg_inference_seconds", "Cumulative average inference time per frame",
			func(s Snapshot) float64 { return s.AvgInference.Seconds() }},
		{"vision_avg_preprocessing_seconds", "Cumulative average preprocessing time per frame",
			func(s Snapshot) float64 { return s.AvgPreprocess.Seconds() }},
		{"vision_fps_mean", "Mean FPS over the rolling window",
			func(s Snapshot) float64 { return s.FPSMean }},
	}

	for _, g := range gauges {
		read := g.read
		e.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: g.name, Help: g.help},
			func() float64 { return read(e.tracker.Snapshot()) },
		))
	}
}

// Handler returns the HTTP handler serving the exposition endpoint.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
