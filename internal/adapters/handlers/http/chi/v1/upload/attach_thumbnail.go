package upload

import (
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxThumbnailBytes = 5 << 20 //5mb

// V1AttachThumbnailResponse is the response for Attach Thumbnail
type V1AttachThumbnailResponse struct {
	ThumbnailCID string `json:"thumbnail_cid"`
}

// AttachThumbnailV1 receives a multipart thumbnail image, adds it to the
// pinning service and stores the resulting CID on the video record.
func (h *HandlerV1) AttachThumbnailV1(w http.ResponseWriter, r *http.Request) {

	videoID, err := uuid.Parse(chi.URLParam(r, "videoID"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid video id")
		return
	}

	if err := r.ParseMultipartForm(maxThumbnailBytes); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "file part required")
		return
	}
	defer file.Close()

	cid, attachErr := h.uploadService.AttachThumbnail(r.Context(), videoID, header.Filename, file)
	switch {
	case errors.Is(attachErr, domain.ErrVideoNotFound):
		api.WriteError(w, http.StatusNotFound, attachErr.Error())
	case errors.Is(attachErr, domain.ErrUpstreamUnavailable):
		h.logger.Error("pinning service unavailable for thumbnail", "video_id", videoID, "error", attachErr)
		api.WriteError(w, http.StatusBadGateway, attachErr.Error())
	case attachErr != nil:
		h.logger.Error("error attaching thumbnail", "video_id", videoID, "error", attachErr)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusOK, V1AttachThumbnailResponse{ThumbnailCID: cid})
	}
}
