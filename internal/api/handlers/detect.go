package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"drone-vision-go/internal/logging"
	"drone-vision-go/internal/metrics"
	"drone-vision-go/internal/pipeline"
)

// Processor runs the detection pipeline on a single frame. Implemented by
// pipeline.Service; split out so handlers can be tested without OpenCV.
type Processor interface {
	ProcessImage(ctx context.Context, raw []byte) (*pipeline.Result, error)
	ProcessStreamFrame(ctx context.Context, raw []byte, frameIdx int) (*pipeline.Result, bool, error)
}

// DetectHandler serves the predict and stream endpoints.
type DetectHandler struct {
	proc    Processor
	tracker *metrics.Tracker
}

func NewDetectHandler(proc Processor, tracker *metrics.Tracker) *DetectHandler {
	return &DetectHandler{proc: proc, tracker: tracker}
}

// Predict godoc
// @Summary Run detection on a single image
// @Description Accepts a multipart image, runs preprocessing and model inference, and returns enriched detections with thermal and annotated views
// @Tags detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (JPEG or PNG)"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predict [post]
func (h *DetectHandler) Predict(c *gin.Context) {
	start := time.Now()
	h.tracker.IncRequest()

	raw, ok := h.readFrame(c)
	if !ok {
		return
	}

	res, err := h.proc.ProcessImage(c.Request.Context(), raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	logging.Debug(c).
		Int("detections", len(res.Set.Detections)).
		Msg("predict request served")

	c.JSON(http.StatusOK, PredictResponse{
		Detections: res.Set.Detections,
		BestMatch:  res.Set.BestMatch,
		ResearchMetrics: ResearchMetrics{
			QualityMetrics:        res.Quality,
			Resolution:            res.Resolution,
			PreprocessingTimeMs:   millis(res.Preprocess),
			InferenceTimeMs:       millis(res.Inference),
			TotalProcessingTimeMs: millis(time.Since(start)),
		},
		ThermalImage:   res.Thermal,
		AnnotatedImage: res.Annotated,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	})
}

// Stream godoc
// @Summary Run detection on a video stream frame
// @Description Accepts a multipart frame with its index, applies the frame skip policy, and returns detections with stream metrics
// @Tags detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Frame image (JPEG)"
// @Param frame_idx formData int false "Zero-based frame index" default(0)
// @Success 200 {object} StreamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stream [post]
func (h *DetectHandler) Stream(c *gin.Context) {
	h.tracker.IncRequest()

	frameIdx := 0
	if v := c.PostForm("frame_idx"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid frame index"})
			return
		}
		frameIdx = n
	}

	raw, ok := h.readFrame(c)
	if !ok {
		return
	}

	res, skipped, err := h.proc.ProcessStreamFrame(c.Request.Context(), raw, frameIdx)
	if err != nil {
		h.fail(c, err)
		return
	}
	if skipped {
		c.JSON(http.StatusOK, SkippedResponse{
			Skipped:  true,
			FrameIdx: frameIdx,
			Message:  "Frame skipped for real-time performance",
		})
		return
	}

	c.JSON(http.StatusOK, StreamResponse{
		Detections:     res.Set.Detections,
		BestMatch:      res.Set.BestMatch,
		AnnotatedImage: res.Annotated,
		FrameIdx:       frameIdx,
		Metrics: StreamMetrics{
			QualityMetrics:      res.Quality,
			Resolution:          res.Resolution,
			PreprocessingTimeMs: millis(res.Preprocess),
			InferenceTimeMs:     millis(res.Inference),
			FPS:                 round2(res.FPS()),
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
}

// readFrame pulls the uploaded file out of the multipart form. Input errors
// are the client's fault and do not count against the error rate.
func (h *DetectHandler) readFrame(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return nil, false
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Empty filename"})
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unable to read uploaded file"})
		return nil, false
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unable to read uploaded file"})
		return nil, false
	}
	return raw, true
}

func (h *DetectHandler) fail(c *gin.Context, err error) {
	h.tracker.IncError()
	switch {
	case errors.Is(err, pipeline.ErrDecode):
		logging.Warn(c).Err(err).Msg("frame decode failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid image data"})
	case errors.Is(err, pipeline.ErrInference):
		logging.Error(c).Err(err).Msg("model inference failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Model inference failed"})
	default:
		logging.Error(c).Err(err).Msg("frame processing failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal processing error"})
	}
}
