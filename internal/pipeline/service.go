package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"drone-vision-go/internal/config"
	"drone-vision-go/internal/detector"
	"drone-vision-go/internal/messaging"
	"drone-vision-go/internal/metrics"
	"drone-vision-go/internal/models"
)

// JPEG qualities per consumer: the model gets a near-lossless frame, the
// predict response a display-grade one, the stream path a lighter one.
const (
	modelJPEGQuality   = 95
	predictJPEGQuality = 85
	streamJPEGQuality  = 75
)

// Result is the outcome of one fully processed frame.
type Result struct {
	Set        models.DetectionSet
	Quality    *models.QualityMetrics
	Resolution string
	Preprocess time.Duration
	Inference  time.Duration
	Thermal    string
	Annotated  string
}

// FPS returns the instantaneous throughput of this frame, or 0 when the
// elapsed time is zero.
func (r *Result) FPS() float64 {
	total := r.Preprocess + r.Inference
	if total <= 0 {
		return 0
	}
	return 1.0 / total.Seconds()
}

// Service orchestrates the per-request pipeline: preparation, inference,
// aggregation, visualization and telemetry recording. It owns no per-request
// state; the settings store and the metrics tracker are the only shared
// structures it touches.
type Service struct {
	settings *config.Store
	det      detector.Detector
	tracker  *metrics.Tracker
	events   *messaging.Service
	workerID string
	log      zerolog.Logger
}

func NewService(settings *config.Store, det detector.Detector, tracker *metrics.Tracker, events *messaging.Service, workerID string, logger zerolog.Logger) *Service {
	return &Service{
		settings: settings,
		det:      det,
		tracker:  tracker,
		events:   events,
		workerID: workerID,
		log:      logger,
	}
}

// Settings exposes the current pipeline settings.
func (s *Service) Settings() config.Settings {
	return s.settings.Get()
}

// ProcessImage runs the full pipeline on a still image with thermal rendering
// enabled per config.
func (s *Service) ProcessImage(ctx context.Context, raw []byte) (*Result, error) {
	return s.process(ctx, raw, -1, predictJPEGQuality)
}

// ProcessStreamFrame runs the pipeline on one stream frame unless the skip
// policy elects to drop it. Skipped frames bypass preparation, inference and
// metrics recording entirely; skipped is true and the result nil.
func (s *Service) ProcessStreamFrame(ctx context.Context, raw []byte, frameIdx int) (result *Result, skipped bool, err error) {
	if !ShouldProcess(frameIdx, s.settings.Get().FrameSkipRate) {
		return nil, true, nil
	}

	result, err = s.process(ctx, raw, frameIdx, streamJPEGQuality)
	return result, false, err
}

func (s *Service) process(ctx context.Context, raw []byte, frameIdx int, annotateQuality int) (*Result, error) {
	settings := s.settings.Get()

	prep, err := Prepare(raw, settings)
	if err != nil {
		return nil, err
	}
	defer prep.Close()

	var thermal string
	if settings.EnableThermal {
		thermal, err = RenderThermal(prep.Display)
		if err != nil {
			// Degrade to an empty visualization rather than failing a frame
			// whose detections may still succeed.
			s.log.Warn().Err(err).Msg("Thermal rendering failed")
			thermal = ""
		}
	}

	frameJPEG, err := encodeModelFrame(prep)
	if err != nil {
		return nil, err
	}

	inferStart := time.Now()
	rawDetections, err := s.det.Detect(ctx, frameJPEG, settings.ConfThreshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	inference := time.Since(inferStart)

	set := BuildDetectionSet(rawDetections)

	annotated, err := Annotate(prep.Enhanced, set.Detections, annotateQuality)
	if err != nil {
		s.log.Warn().Err(err).Msg("Annotation encoding failed")
		annotated = ""
	}

	s.tracker.Record(prep.Elapsed, inference, 1)
	s.publishEvent(set, frameIdx)

	s.log.Info().
		Int("detections", len(set.Detections)).
		Dur("preprocessing", prep.Elapsed).
		Dur("inference", inference).
		Str("resolution", prep.Resolution).
		Msg("Frame processed")

	return &Result{
		Set:        set,
		Quality:    prep.Quality,
		Resolution: prep.Resolution,
		Preprocess: prep.Elapsed,
		Inference:  inference,
		Thermal:    thermal,
		Annotated:  annotated,
	}, nil
}

func encodeModelFrame(prep *Prepared) ([]byte, error) {
	buf, err := encodeJPEG(prep.Enhanced, modelJPEGQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame for inference: %w", err)
	}
	return buf, nil
}

// publishEvent fires a detection event to NATS when messaging is wired and
// the frame produced at least one detection. Fire and forget.
func (s *Service) publishEvent(set models.DetectionSet, frameIdx int) {
	if s.events == nil || set.BestMatch == nil {
		return
	}

	event := messaging.DetectionEvent{
		WorkerID:   s.workerID,
		FrameIdx:   frameIdx,
		Label:      set.BestMatch.Label,
		Confidence: set.BestMatch.Confidence,
		Count:      len(set.Detections),
		Timestamp:  time.Now(),
	}

	if err := s.events.PublishDetectionEvent(event); err != nil {
		s.log.Warn().Err(err).Msg("Failed to publish detection event")
	}
}
