package handler

import (
	"net/http"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/api/response"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
)

// AdminHandler handles admin endpoints.
type AdminHandler struct {
	loader *catalog.Loader
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(loader *catalog.Loader) *AdminHandler {
	return &AdminHandler{loader: loader}
}

// ReloadCatalog handles POST /v1/admin/catalog/reload - rebuild the
// catalog snapshot from its sources and swap it in.
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	snapshot := h.loader.Reload(r.Context())

	status := models.CatalogStatus{
		Source:    snapshot.Source,
		Exercises: snapshot.Len(),
		LoadedAt:  models.Timestamp(snapshot.LoadedAt),
		Degraded:  snapshot.Degraded,
	}

	response.JSON(w, r, http.StatusOK, status)
}
