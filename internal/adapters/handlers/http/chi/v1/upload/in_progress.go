package upload

import (
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
)

// InProgressV1 returns the batched status view for all of the caller's
// active videos.
func (h *HandlerV1) InProgressV1(w http.ResponseWriter, r *http.Request) {

	owner := api.UserFromContext(r.Context())

	list, err := h.statusService.ListInProgress(r.Context(), owner)
	if err != nil {
		h.logger.Error("error listing in-progress videos", "owner", owner, "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteData(w, http.StatusOK, list)
}
