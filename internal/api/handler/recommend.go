// Package handler provides HTTP handlers for the FitAdvisor API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/api/response"
	"github.com/fitadvisor/fitadvisor/internal/profile"
	"github.com/fitadvisor/fitadvisor/internal/recommend"
)

// RecommendHandler handles workout recommendation endpoints.
type RecommendHandler struct {
	service *recommend.Service
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(service *recommend.Service) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// Recommend handles POST /v1/recommendations - build a workout plan.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	prof := profile.FromRequest(&input)
	items := h.service.Recommend(r.Context(), prof)

	if len(items) == 0 {
		// The empty-plan message is part of the client contract.
		response.JSON(w, r, http.StatusOK, models.RecommendationResponse{
			Message: models.RecommendationEmptyMessage,
			Data:    []models.RecommendationItem{},
		})
		return
	}

	response.JSON(w, r, http.StatusOK, models.RecommendationResponse{
		Message: models.RecommendationSuccessMessage,
		Count:   len(items),
		Data:    items,
	})
}
