// Package metrics accumulates process-wide performance telemetry: cumulative
// request/frame/error counters, separate preprocessing and inference time
// totals, and a fixed-capacity FIFO window of instantaneous FPS samples.
package metrics

import (
	"sync"
	"time"
)

// FPSWindowSize bounds the rolling FPS window; the oldest sample is evicted
// once the window is full.
const FPSWindowSize = 100

// Tracker is safe for concurrent use. One coarse lock guards all counters and
// the FPS ring; every critical section is a handful of field updates and never
// spans a blocking call.
type Tracker struct {
	mu sync.Mutex

	startTime time.Time

	totalRequests int64
	totalFrames   int64
	errorCount    int64

	totalPreprocess time.Duration
	totalInference  time.Duration

	fpsWindow [FPSWindowSize]float64
	fpsHead   int
	fpsCount  int
}

// Snapshot is a consistent point-in-time view of the tracker state.
type Snapshot struct {
	StartTime     time.Time
	Uptime        time.Duration
	TotalRequests int64
	TotalFrames   int64
	ErrorCount    int64

	// True cumulative per-call averages over all recorded frames.
	AvgPreprocess time.Duration
	AvgInference  time.Duration

	TotalProcessing time.Duration

	FPSMean    float64
	FPSMin     float64
	FPSMax     float64
	FPSSamples int
}

func NewTracker() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// Record adds one processed batch of frames: increments the frame count, folds
// the elapsed times into the cumulative totals, and appends the derived FPS
// sample. No sample is appended when both elapsed values are zero (the
// instantaneous FPS would be undefined).
func (t *Tracker) Record(preprocess, inference time.Duration, frames int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalFrames += frames
	t.totalPreprocess += preprocess
	t.totalInference += inference

	total := preprocess + inference
	if total > 0 {
		t.pushFPS(1.0 / total.Seconds())
	}
}

// pushFPS appends a sample, evicting the oldest in FIFO order at capacity.
// Caller must hold t.mu.
func (t *Tracker) pushFPS(fps float64) {
	if t.fpsCount < FPSWindowSize {
		t.fpsWindow[(t.fpsHead+t.fpsCount)%FPSWindowSize] = fps
		t.fpsCount++
		return
	}
	t.fpsWindow[t.fpsHead] = fps
	t.fpsHead = (t.fpsHead + 1) % FPSWindowSize
}

// IncRequest counts one HTTP request against the process totals.
func (t *Tracker) IncRequest() {
	t.mu.Lock()
	t.totalRequests++
	t.mu.Unlock()
}

// IncError counts one pipeline error.
func (t *Tracker) IncError() {
	t.mu.Lock()
	t.errorCount++
	t.mu.Unlock()
}

// Snapshot reads all counters and window statistics under the same exclusion
// as the writers.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		StartTime:       t.startTime,
		Uptime:          time.Since(t.startTime),
		TotalRequests:   t.totalRequests,
		TotalFrames:     t.totalFrames,
		ErrorCount:      t.errorCount,
		TotalProcessing: t.totalPreprocess + t.totalInference,
		FPSSamples:      t.fpsCount,
	}

	if t.totalFrames > 0 {
		snap.AvgPreprocess = t.totalPreprocess / time.Duration(t.totalFrames)
		snap.AvgInference = t.totalInference / time.Duration(t.totalFrames)
	}

	if t.fpsCount > 0 {
		sum := 0.0
		min := t.fpsWindow[t.fpsHead]
		max := min
		for i := 0; i < t.fpsCount; i++ {
			v := t.fpsWindow[(t.fpsHead+i)%FPSWindowSize]
			sum += v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		snap.FPSMean = sum / float64(t.fpsCount)
		snap.FPSMin = min
		snap.FPSMax = max
	}

	return snap
}
