package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drone-vision-go/internal/detector"
)

func rawDet(label string, conf float64, bbox ...float64) detector.RawDetection {
	if bbox == nil {
		bbox = []float64{10, 10, 50, 50}
	}
	return detector.RawDetection{Label: label, Confidence: conf, BBox: bbox}
}

func TestBuildDetectionSetEnrichesKnownAnimals(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{rawDet("elephant", 0.9)})

	require.Len(t, set.Detections, 1)
	d := set.Detections[0]
	assert.Equal(t, "elephant", d.Label)
	assert.Equal(t, "Elephant", d.Details.Title)
	assert.Equal(t, "🐘", d.Details.Emoji)
	assert.NotEmpty(t, d.Details.Fact)
	assert.NotEmpty(t, d.Details.Habitat)
}

func TestBuildDetectionSetLookupIsCaseInsensitive(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{rawDet("Elephant", 0.9)})

	require.Len(t, set.Detections, 1)
	assert.Equal(t, "Elephant", set.Detections[0].Details.Title)
}

func TestBuildDetectionSetPlaceholderForUnknownLabel(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{rawDet("platypus", 0.5)})

	require.Len(t, set.Detections, 1)
	d := set.Detections[0]
	assert.Equal(t, "Platypus", d.Details.Title)
	assert.Equal(t, "Unknown", d.Details.Habitat)
	assert.NotEmpty(t, d.Details.Fact)
}

func TestBuildDetectionSetBestMatchHighestConfidence(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{
		rawDet("zebra", 0.4),
		rawDet("lion", 0.8),
		rawDet("giraffe", 0.6),
	})

	require.NotNil(t, set.BestMatch)
	assert.Equal(t, "lion", set.BestMatch.Label)
}

func TestBuildDetectionSetTieKeepsFirstOccurrence(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{
		rawDet("zebra", 0.7),
		rawDet("lion", 0.7),
	})

	require.NotNil(t, set.BestMatch)
	assert.Equal(t, "zebra", set.BestMatch.Label)
}

func TestBuildDetectionSetEmptyInput(t *testing.T) {
	set := BuildDetectionSet(nil)

	assert.Empty(t, set.Detections)
	assert.Nil(t, set.BestMatch)
}

func TestBuildDetectionSetDropsInvalidOutputs(t *testing.T) {
	set := BuildDetectionSet([]detector.RawDetection{
		rawDet("", 0.9),                          // empty label
		rawDet("lion", 1.5),                      // confidence out of range
		rawDet("lion", -0.1),                     // confidence out of range
		rawDet("lion", 0.9, 10, 10),              // wrong bbox length
		rawDet("lion", 0.9, 50, 10, 10, 50),      // x2 < x1
		rawDet("lion", 0.9, 10, 50, 50, 10),      // y2 < y1
		rawDet("zebra", 0.6, 10, 10, 200, 150),   // valid
	})

	require.Len(t, set.Detections, 1)
	assert.Equal(t, "zebra", set.Detections[0].Label)
	require.NotNil(t, set.BestMatch)
	assert.Equal(t, "zebra", set.BestMatch.Label)
}
