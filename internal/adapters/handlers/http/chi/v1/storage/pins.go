package storage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// PinnedV1 lists every recursively-pinned CID with size, age and
// unpin eligibility.
func (h *HandlerV1) PinnedV1(w http.ResponseWriter, r *http.Request) {

	pins, err := h.storageService.ListPinnedFiles(r.Context())
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		h.logger.Error("pinning service unavailable for pin listing", "error", err)
		api.WriteError(w, http.StatusBadGateway, err.Error())
	case err != nil:
		h.logger.Error("error listing pinned files", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, pins)
	}
}

// UnpinnedV1 returns the approximate reclaimable-space estimate
func (h *HandlerV1) UnpinnedV1(w http.ResponseWriter, r *http.Request) {

	estimate, err := h.storageService.EstimateReclaimableSpace(r.Context())
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		h.logger.Error("pinning service unavailable for reclaim estimate", "error", err)
		api.WriteError(w, http.StatusBadGateway, err.Error())
	case err != nil:
		h.logger.Error("error estimating reclaimable space", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, estimate)
	}
}

// V1UnpinRequest is the body request for bulk unpin
type V1UnpinRequest struct {
	CIDs  []string `json:"cids"`
	Force bool     `json:"force"`
}

// UnpinV1 bulk-unpins CIDs. Per-CID failures land in the result's failed
// list; the response is 200 whenever the batch itself executed.
func (h *HandlerV1) UnpinV1(w http.ResponseWriter, r *http.Request) {

	var req V1UnpinRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding unpin request", "error", err)
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.storageService.UnpinFiles(r.Context(), req.CIDs, req.Force)
	switch {
	case errors.Is(err, domain.ErrValidation):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		h.logger.Error("error unpinning files", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, result)
	}
}
