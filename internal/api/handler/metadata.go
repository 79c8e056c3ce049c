package handler

import (
	"net/http"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/api/response"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/recommend"
)

// MetadataHandler handles static metadata endpoints.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// Equipment handles GET /v1/metadata/equipment - the closed equipment
// vocabulary accepted in recommendation requests.
func (h *MetadataHandler) Equipment(w http.ResponseWriter, r *http.Request) {
	items := make([]string, len(catalog.ValidEquipment))
	copy(items, catalog.ValidEquipment)

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, models.EquipmentList{Items: items})
}

// Muscles handles GET /v1/metadata/muscles - the movement pattern to
// target muscle mapping used to assemble plans.
func (h *MetadataHandler) Muscles(w http.ResponseWriter, r *http.Request) {
	movements := make([]models.MovementMuscles, 0, len(recommend.MovementOrder))
	for _, movement := range recommend.MovementOrder {
		muscles := recommend.MovementMuscles(movement)

		mm := models.MovementMuscles{
			Movement: movement,
			Muscles:  muscles,
		}
		for _, muscle := range muscles {
			switch {
			case recommend.IsMajorMuscle(muscle):
				mm.Major = append(mm.Major, muscle)
			case recommend.IsMinorMuscle(muscle):
				mm.Minor = append(mm.Minor, muscle)
			}
		}
		movements = append(movements, mm)
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, models.MuscleMap{Movements: movements})
}
