package models

// AnimalFact is a descriptive record attached to a detection label. Only the
// first four fields are guaranteed; the rest are present for known species.
type AnimalFact struct {
	Title          string `json:"title"`
	Fact           string `json:"fact"`
	Habitat        string `json:"habitat"`
	Emoji          string `json:"emoji"`
	Diet           string `json:"diet,omitempty"`
	Lifespan       string `json:"lifespan,omitempty"`
	Speed          string `json:"speed,omitempty"`
	Weight         string `json:"weight,omitempty"`
	CollectiveNoun string `json:"collective_noun,omitempty"`
}

// Detection is a single validated model detection enriched with its fact record.
// BBox is [x1, y1, x2, y2] in pixel coordinates with x2 >= x1 and y2 >= y1.
type Detection struct {
	Label      string     `json:"label"`
	Confidence float64    `json:"confidence"`
	BBox       []float64  `json:"bbox"`
	Details    AnimalFact `json:"details"`
}

// DetectionSet holds detections in model output order plus the highest-confidence
// entry. BestMatch is nil when the set is empty; ties go to the first occurrence.
type DetectionSet struct {
	Detections []Detection `json:"detections"`
	BestMatch  *Detection  `json:"best_match"`
}

// QualityMetrics are diagnostic image statistics computed from the decoded
// frame before enhancement. All values are non-negative.
type QualityMetrics struct {
	BlurScore      float64 `json:"blur_score"`
	BrightnessMean float64 `json:"brightness_mean"`
	BrightnessStd  float64 `json:"brightness_std"`
	Contrast       float64 `json:"contrast"`
	Sharpness      float64 `json:"sharpness"`
}
