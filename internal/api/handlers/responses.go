package handlers

import (
	"math"
	"time"

	"drone-vision-go/internal/models"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResearchMetrics carries per-frame diagnostics on the predict path. Quality
// fields are omitted when blur detection is disabled.
type ResearchMetrics struct {
	*models.QualityMetrics
	Resolution            string  `json:"resolution"`
	PreprocessingTimeMs   float64 `json:"preprocessing_time_ms"`
	InferenceTimeMs       float64 `json:"inference_time_ms"`
	TotalProcessingTimeMs float64 `json:"total_processing_time_ms"`
}

// PredictResponse is the response contract for POST /predict.
type PredictResponse struct {
	Detections      []models.Detection `json:"detections"`
	BestMatch       *models.Detection  `json:"best_match"`
	ResearchMetrics ResearchMetrics    `json:"research_metrics"`
	ThermalImage    string             `json:"thermal_image"`
	AnnotatedImage  string             `json:"annotated_image"`
	Timestamp       string             `json:"timestamp"`
}

// StreamMetrics carries per-frame diagnostics on the stream path.
type StreamMetrics struct {
	*models.QualityMetrics
	Resolution          string  `json:"resolution"`
	PreprocessingTimeMs float64 `json:"preprocessing_time_ms"`
	InferenceTimeMs     float64 `json:"inference_time_ms"`
	FPS                 float64 `json:"fps"`
}

// StreamResponse is the response contract for a processed stream frame.
type StreamResponse struct {
	Detections     []models.Detection `json:"detections"`
	BestMatch      *models.Detection  `json:"best_match"`
	AnnotatedImage string             `json:"annotated_image"`
	FrameIdx       int                `json:"frame_idx"`
	Metrics        StreamMetrics      `json:"metrics"`
	Timestamp      string             `json:"timestamp"`
}

// SkippedResponse is returned for frames the skip policy drops.
type SkippedResponse struct {
	Skipped  bool   `json:"skipped"`
	FrameIdx int    `json:"frame_idx"`
	Message  string `json:"message"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func millis(d time.Duration) float64 {
	return round2(float64(d) / float64(time.Millisecond))
}
