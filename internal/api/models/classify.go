package models

// ClassificationResponse is the fitness-level classification response body.
type ClassificationResponse struct {
	// PredictedLabel is the most probable fitness level.
	PredictedLabel string `json:"predicted_label"`

	// ClassProbabilities maps every known label to its probability.
	ClassProbabilities map[string]float64 `json:"class_probabilities"`
}
