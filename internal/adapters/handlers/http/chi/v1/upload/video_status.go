package upload

import (
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// VideoStatusV1 returns the reconciled status view for one video. This is a
// pure read; clients poll it at whatever cadence they like.
func (h *HandlerV1) VideoStatusV1(w http.ResponseWriter, r *http.Request) {

	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	view, statusErr := h.statusService.GetVideoStatus(r.Context(), videoID)
	switch {
	case errors.Is(statusErr, domain.ErrVideoNotFound):
		api.WriteError(w, http.StatusNotFound, statusErr.Error())
	case statusErr != nil:
		h.logger.Error("error reconciling video status", "video_id", videoID, "error", statusErr)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, view)
	}
}
