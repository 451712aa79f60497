package models

// Macros are string quantities as returned by the reasoning service, e.g. "20 g".
type Macros struct {
	Protein string `json:"protein"`
	Fat     string `json:"fat"`
	Carbs   string `json:"carbs"`
}

// EstimationResult is the normalized output of the estimation pipeline.
type EstimationResult struct {
	Calories   float64 `json:"calories"`
	Macros     Macros  `json:"macros"`
	Confidence string  `json:"confidence"` // "low" | "medium" | "high"
	AIInsight  string  `json:"ai_insight"`
}

// DetectedFood is one item of the canned image answer used in mock mode.
type DetectedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ImageEstimation is what the image path returns: the flattened result in
// live mode, or only Detected in mock mode.
type ImageEstimation struct {
	*EstimationResult
	Detected []DetectedFood `json:"detected,omitempty"`
}
