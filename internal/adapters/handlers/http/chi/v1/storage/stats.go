package storage

import (
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// StatsV1 returns the composed disk and repo usage view
func (h *HandlerV1) StatsV1(w http.ResponseWriter, r *http.Request) {

	stats, err := h.storageService.GetStorageStats(r.Context())
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		h.logger.Error("pinning service unavailable for stats", "error", err)
		api.WriteError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, domain.ErrSystemQuery):
		h.logger.Error("disk query failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, err.Error())
	case err != nil:
		h.logger.Error("error collecting storage stats", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, stats)
	}
}
