// Package detector defines the boundary to the external detection model. The
// model is a black box: given an encoded frame and a confidence threshold it
// returns labeled, scored bounding boxes. Validation and enrichment of the raw
// output happen downstream in the pipeline.
package detector

import "context"

// RawDetection is one unvalidated model output.
type RawDetection struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	BBox       []float64 `json:"bbox"`
}

// Detector runs inference on a JPEG-encoded frame.
type Detector interface {
	Detect(ctx context.Context, frameJPEG []byte, confThreshold float64) ([]RawDetection, error)
	Name() string
	IsHealthy() bool
}
