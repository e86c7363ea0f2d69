package storage

import (
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// V1StorageHealthResponse is the response for Storage Health
type V1StorageHealthResponse struct {
	Healthy     bool               `json:"healthy"`
	Level       domain.HealthLevel `json:"level"`
	PercentUsed float64            `json:"percent_used"`
}

// HealthV1 reports the dashboard's disk health classification
func (h *HandlerV1) HealthV1(w http.ResponseWriter, r *http.Request) {

	stats, err := h.storageService.GetStorageStats(r.Context())
	if err != nil {
		h.logger.Error("error collecting storage health", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteData(w, http.StatusOK, V1StorageHealthResponse{
		Healthy:     stats.Health != domain.HealthRed,
		Level:       stats.Health,
		PercentUsed: stats.Disk.PercentUsed,
	})
}
