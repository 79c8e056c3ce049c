package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/api/response"
	"github.com/fitadvisor/fitadvisor/internal/classifier"
)

// ClassifyHandler handles fitness-level classification endpoints.
type ClassifyHandler struct {
	service *classifier.Service
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(service *classifier.Service) *ClassifyHandler {
	return &ClassifyHandler{service: service}
}

// Classify handles POST /v1/classify - predict the user's fitness level.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	prediction, err := h.service.Classify(input)
	if err != nil {
		switch {
		case errors.Is(err, classifier.ErrModelUnavailable):
			response.InternalError(w, r, "classification model is not available")
		default:
			response.BadRequest(w, r, err.Error(), nil)
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.ClassificationResponse{
		PredictedLabel:     prediction.Label,
		ClassProbabilities: prediction.Probabilities,
	})
}
