package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerCumulativeAverages(t *testing.T) {
	tr := NewTracker()

	tr.Record(10*time.Millisecond, 40*time.Millisecond, 1)
	tr.Record(20*time.Millisecond, 60*time.Millisecond, 1)

	snap := tr.Snapshot()
	assert.Equal(t, int64(2), snap.TotalFrames)
	assert.Equal(t, 15*time.Millisecond, snap.AvgPreprocess)
	assert.Equal(t, 50*time.Millisecond, snap.AvgInference)
	assert.Equal(t, 130*time.Millisecond, snap.TotalProcessing)
}

func TestTrackerFPSWindowCapacity(t *testing.T) {
	tr := NewTracker()

	for i := 0; i < 150; i++ {
		tr.Record(0, 20*time.Millisecond, 1)
	}

	snap := tr.Snapshot()
	assert.Equal(t, FPSWindowSize, snap.FPSSamples)
	assert.Equal(t, int64(150), snap.TotalFrames)
	assert.InDelta(t, 50.0, snap.FPSMean, 0.001)
}

func TestTrackerFPSWindowEvictsOldest(t *testing.T) {
	tr := NewTracker()

	// 50 slow samples (10 FPS) followed by 100 fast ones (100 FPS); the slow
	// samples must all be evicted once the window is full.
	for i := 0; i < 50; i++ {
		tr.Record(0, 100*time.Millisecond, 1)
	}
	for i := 0; i < 100; i++ {
		tr.Record(0, 10*time.Millisecond, 1)
	}

	snap := tr.Snapshot()
	require.Equal(t, FPSWindowSize, snap.FPSSamples)
	assert.InDelta(t, 100.0, snap.FPSMean, 0.001)
	assert.InDelta(t, 100.0, snap.FPSMin, 0.001)
	assert.InDelta(t, 100.0, snap.FPSMax, 0.001)
}

func TestTrackerFPSMinMax(t *testing.T) {
	tr := NewTracker()

	tr.Record(0, 10*time.Millisecond, 1)  // 100 FPS
	tr.Record(0, 50*time.Millisecond, 1)  // 20 FPS
	tr.Record(0, 25*time.Millisecond, 1)  // 40 FPS

	snap := tr.Snapshot()
	assert.Equal(t, 3, snap.FPSSamples)
	assert.InDelta(t, 20.0, snap.FPSMin, 0.001)
	assert.InDelta(t, 100.0, snap.FPSMax, 0.001)
}

func TestTrackerNoSampleForZeroElapsed(t *testing.T) {
	tr := NewTracker()

	tr.Record(0, 0, 1)

	snap := tr.Snapshot()
	assert.Equal(t, int64(1), snap.TotalFrames)
	assert.Equal(t, 0, snap.FPSSamples)
	assert.Zero(t, snap.FPSMean)
}

func TestTrackerCounters(t *testing.T) {
	tr := NewTracker()

	tr.IncRequest()
	tr.IncRequest()
	tr.IncError()

	snap := tr.Snapshot()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.ErrorCount)
	assert.Equal(t, int64(0), snap.TotalFrames)
}

func TestTrackerZeroFramesNoAverages(t *testing.T) {
	tr := NewTracker()

	snap := tr.Snapshot()
	assert.Zero(t, snap.AvgPreprocess)
	assert.Zero(t, snap.AvgInference)
}
