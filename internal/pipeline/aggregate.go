package pipeline

import (
	"github.com/rs/zerolog/log"

	"drone-vision-go/internal/detector"
	"drone-vision-go/internal/facts"
	"drone-vision-go/internal/models"
)

// BuildDetectionSet validates raw model outputs, enriches each retained
// detection with its fact record, and selects the best match. The model is
// trusted but defensively checked: outputs with an empty label, an
// out-of-range confidence or a degenerate bounding box are dropped with a
// warning, never treated as fatal.
func BuildDetectionSet(raw []detector.RawDetection) models.DetectionSet {
	set := models.DetectionSet{Detections: make([]models.Detection, 0, len(raw))}

	for _, r := range raw {
		if !validDetection(r) {
			log.Warn().
				Str("label", r.Label).
				Float64("confidence", r.Confidence).
				Floats64("bbox", r.BBox).
				Msg("Dropping invalid model detection")
			continue
		}

		set.Detections = append(set.Detections, models.Detection{
			Label:      r.Label,
			Confidence: r.Confidence,
			BBox:       r.BBox,
			Details:    facts.Lookup(r.Label),
		})
	}

	// Maximum confidence wins; ties keep the first occurrence.
	for i := range set.Detections {
		if set.BestMatch == nil || set.Detections[i].Confidence > set.BestMatch.Confidence {
			set.BestMatch = &set.Detections[i]
		}
	}

	return set
}

func validDetection(r detector.RawDetection) bool {
	if r.Label == "" {
		return false
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return false
	}
	if len(r.BBox) != 4 {
		return false
	}
	return r.BBox[2] >= r.BBox[0] && r.BBox[3] >= r.BBox[1]
}
