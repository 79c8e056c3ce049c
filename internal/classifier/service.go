package classifier

import (
	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the classifier service.
type ServiceConfig struct {
	// ModelPath is the JSON model file location.
	ModelPath string

	// Logger for load diagnostics.
	Logger zerolog.Logger
}

// Service wraps the model with availability tracking: when the model fails
// to load at startup the classification endpoint stays down until restart,
// but the rest of the service keeps running.
type Service struct {
	model  *Model
	logger zerolog.Logger
}

// NewService loads the model from cfg.ModelPath. Load failure is not fatal;
// the returned service reports unavailable.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{logger: cfg.Logger}

	model, err := LoadModel(cfg.ModelPath)
	if err != nil {
		cfg.Logger.Error().
			Err(err).
			Str("path", cfg.ModelPath).
			Msg("classification model failed to load, endpoint disabled")
		return s
	}

	s.model = model
	cfg.Logger.Info().
		Str("path", cfg.ModelPath).
		Strs("classes", model.Classes).
		Int("features", len(model.Features)).
		Msg("classification model loaded")
	return s
}

// Available reports whether the model loaded successfully.
func (s *Service) Available() bool {
	return s.model != nil
}

// Classes returns the model's output labels, nil when unavailable.
func (s *Service) Classes() []string {
	if s.model == nil {
		return nil
	}
	return s.model.Classes
}

// Classify predicts the fitness level for one flat feature record.
func (s *Service) Classify(input map[string]interface{}) (*Prediction, error) {
	if s.model == nil {
		return nil, ErrModelUnavailable
	}
	return s.model.Predict(input)
}
