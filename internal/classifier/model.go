// Package classifier predicts a user's fitness level from profile features
// using a pretrained multinomial logistic model.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Classifier errors.
var (
	// ErrModelUnavailable is returned when no model was loaded at startup.
	ErrModelUnavailable = errors.New("classification model is not available")

	// ErrMissingFeature is returned when the input lacks a model feature.
	ErrMissingFeature = errors.New("missing feature")

	// ErrBadFeatureValue is returned when a feature value is not numeric.
	ErrBadFeatureValue = errors.New("feature value is not numeric")
)

// Model is a standardize-then-softmax classifier exported from the training
// pipeline as JSON.
type Model struct {
	// Classes are the output labels, aligned with Weights and Intercepts.
	Classes []string `json:"classes"`

	// Features are the expected input feature names, in weight order.
	Features []string `json:"features"`

	// Means and Scales standardize each feature before scoring.
	Means  []float64 `json:"means"`
	Scales []float64 `json:"scales"`

	// Weights holds one coefficient vector per class.
	Weights [][]float64 `json:"weights"`

	// Intercepts holds one bias per class.
	Intercepts []float64 `json:"intercepts"`
}

// Prediction is the model output for one input record.
type Prediction struct {
	// Label is the most probable class.
	Label string

	// Probabilities maps every class to its probability.
	Probabilities map[string]float64
}

// LoadModel reads and validates a JSON model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model file %s: %w", path, err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Classes) < 2 {
		return errors.New("need at least two classes")
	}
	if len(m.Features) == 0 {
		return errors.New("no features")
	}
	if len(m.Means) != len(m.Features) || len(m.Scales) != len(m.Features) {
		return errors.New("means/scales length does not match features")
	}
	if len(m.Weights) != len(m.Classes) || len(m.Intercepts) != len(m.Classes) {
		return errors.New("weights/intercepts length does not match classes")
	}
	for i, w := range m.Weights {
		if len(w) != len(m.Features) {
			return fmt.Errorf("weight vector %d has %d coefficients, want %d", i, len(w), len(m.Features))
		}
	}
	for i, s := range m.Scales {
		if s == 0 {
			return fmt.Errorf("scale for feature %q is zero", m.Features[i])
		}
	}
	return nil
}

// Predict scores one flat feature record. Every model feature must be
// present and numeric (numbers or numeric strings are accepted, matching
// the loosely-typed upstream client).
func (m *Model) Predict(input map[string]interface{}) (*Prediction, error) {
	x := make([]float64, len(m.Features))
	for i, name := range m.Features {
		raw, ok := input[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingFeature, name)
		}
		v, err := toFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadFeatureValue, name)
		}
		x[i] = (v - m.Means[i]) / m.Scales[i]
	}

	logits := make([]float64, len(m.Classes))
	maxLogit := math.Inf(-1)
	for c := range m.Classes {
		z := m.Intercepts[c]
		for i, xi := range x {
			z += m.Weights[c][i] * xi
		}
		logits[c] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	// Softmax with max subtraction for numeric stability.
	var sum float64
	for c, z := range logits {
		logits[c] = math.Exp(z - maxLogit)
		sum += logits[c]
	}

	pred := &Prediction{Probabilities: make(map[string]float64, len(m.Classes))}
	best := -1.0
	for c, label := range m.Classes {
		p := logits[c] / sum
		pred.Probabilities[label] = p
		if p > best {
			best = p
			pred.Label = label
		}
	}
	return pred, nil
}

func toFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case json.Number:
		return val.Float64()
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
