package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to a detection model sidecar over HTTP. It tracks consecutive
// failures and applies exponential backoff so a dead sidecar does not get
// hammered on every frame.
type Client struct {
	baseURL   string
	modelName string
	http      *http.Client

	mu               sync.RWMutex
	healthy          bool
	lastFailTime     time.Time
	consecutiveFails int
	maxRetryBackoff  time.Duration
}

type detectResponse struct {
	Detections []RawDetection `json:"detections"`
	Model      string         `json:"model,omitempty"`
}

// NewClient creates a detector client for the given sidecar URL. The initial
// health check runs in the background so startup is never blocked on the model.
func NewClient(baseURL, modelName string, timeout time.Duration) *Client {
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		modelName:       modelName,
		http:            &http.Client{Timeout: timeout},
		maxRetryBackoff: 30 * time.Second,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Str("model_url", c.baseURL).
				Msg("Initial model health check failed - will retry on first frame")
		} else {
			log.Info().Str("model_url", c.baseURL).Str("model", c.modelName).
				Msg("Detection model health check passed")
		}
	}()

	return c
}

// Detect posts the frame to the sidecar and decodes its detections. The
// request context is honored, so a canceled caller stops waiting (the sidecar
// may still finish the inference on its side).
func (c *Client) Detect(ctx context.Context, frameJPEG []byte, confThreshold float64) ([]RawDetection, error) {
	if !c.shouldRetry() {
		return nil, fmt.Errorf("model client in backoff period after consecutive failures")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	if _, err := part.Write(frameJPEG); err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	if err := writer.WriteField("conf_threshold", strconv.FormatFloat(confThreshold, 'f', -1, 64)); err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/detect", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	c.recordSuccess()
	return decoded.Detections, nil
}

// HealthCheck probes the sidecar health endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure()
		return fmt.Errorf("model health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		return fmt.Errorf("model health check returned status %d", resp.StatusCode)
	}

	c.recordSuccess()
	return nil
}

func (c *Client) Name() string {
	return c.modelName
}

func (c *Client) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.healthy
}

// shouldRetry determines whether an attempt is allowed under exponential
// backoff: 1s, 2s, 4s, 8s, 16s, capped at maxRetryBackoff.
func (c *Client) shouldRetry() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.consecutiveFails == 0 {
		return true
	}

	backoff := time.Duration(1<<uint(c.consecutiveFails-1)) * time.Second
	if backoff > c.maxRetryBackoff {
		backoff = c.maxRetryBackoff
	}

	return time.Since(c.lastFailTime) >= backoff
}

func (c *Client) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.healthy = false
	c.consecutiveFails++
	c.lastFailTime = time.Now()

	if c.consecutiveFails <= 5 {
		log.Warn().
			Str("model_url", c.baseURL).
			Int("consecutive_fails", c.consecutiveFails).
			Msg("Model connection failure recorded")
	}
}

func (c *Client) recordSuccess() {
	c.mu.Lock()
	c.healthy = true
	c.consecutiveFails = 0
	c.mu.Unlock()
}
