package storage

import (
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// RunGCV1 triggers a repo garbage collection run and reports the space
// freed. GC runs to completion once started; it is safe to retry later.
func (h *HandlerV1) RunGCV1(w http.ResponseWriter, r *http.Request) {

	result, err := h.storageService.RunGarbageCollection(r.Context())
	switch {
	case errors.Is(err, domain.ErrGCFailed):
		h.logger.Error("garbage collection failed", "error", err)
		api.WriteError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		h.logger.Error("pinning service unavailable for gc", "error", err)
		api.WriteError(w, http.StatusBadGateway, err.Error())
	case err != nil:
		h.logger.Error("error running garbage collection", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, result)
	}
}
