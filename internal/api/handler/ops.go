package handler

import (
	"net/http"
	"time"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/api/response"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/classifier"
	"github.com/fitadvisor/fitadvisor/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version    string
	buildTime  string
	catalog    *catalog.Store
	classifier *classifier.Service
	registry   *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, store *catalog.Store, cls *classifier.Service, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:    version,
		buildTime:  buildTime,
		catalog:    store,
		classifier: cls,
		registry:   registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. Ready means a
// catalog snapshot is loaded; a degraded (sample) snapshot still serves.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Snapshot()
	if snapshot == nil || snapshot.Len() == 0 {
		response.ServiceUnavailable(w, r, "exercise catalog is not loaded")
		return
	}

	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - catalog, classifier and
// provider status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := h.catalog.Snapshot()

	status := models.SystemStatus{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Catalog: models.CatalogStatus{
			Source:    snapshot.Source,
			Exercises: snapshot.Len(),
			LoadedAt:  models.Timestamp(snapshot.LoadedAt),
			Degraded:  snapshot.Degraded,
		},
		Classifier: models.ClassifierStatus{
			Available: h.classifier.Available(),
			Classes:   h.classifier.Classes(),
		},
	}

	if snapshot.Degraded || !h.classifier.Available() {
		status.Status = models.HealthStatusDegraded
	}

	for _, p := range h.registry.GetAllHealth() {
		ps := models.ProviderStatus{
			Provider:     p.Name,
			Status:       models.HealthStatusOK,
			CircuitState: p.CircuitState.String(),
			LastError:    p.LastError,
		}
		switch {
		case p.IsUnhealthy():
			ps.Status = models.HealthStatusFail
		case p.IsDegraded():
			ps.Status = models.HealthStatusDegraded
		}
		status.Providers = append(status.Providers, ps)
	}

	response.JSON(w, r, http.StatusOK, status)
}
