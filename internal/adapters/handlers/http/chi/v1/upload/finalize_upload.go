package upload

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	uploadservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/upload"

	"github.com/google/uuid"
)

// V1FinalizeUploadRequest is the body request for Finalize Upload. Community
// is accepted as either a bare name string or an object carrying a name.
type V1FinalizeUploadRequest struct {
	UploadID    uuid.UUID       `json:"upload_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Community   json.RawMessage `json:"community,omitempty"`
}

// V1FinalizeUploadResponse is the response for Finalize Upload
type V1FinalizeUploadResponse struct {
	VideoID  uuid.UUID `json:"video_id"`
	Permlink string    `json:"permlink"`
}

// FinalizeUploadV1 turns a completed upload session into a video record
func (h *HandlerV1) FinalizeUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1FinalizeUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding finalize request", "error", err)
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UploadID == uuid.Nil {
		api.WriteError(w, http.StatusBadRequest, "upload_id required")
		return
	}

	community, err := uploadservice.NormalizeCommunity(req.Community)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	metadata := domain.VideoMetadata{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Community:   community,
	}

	result, finalizeErr := h.uploadService.Finalize(r.Context(), req.UploadID, metadata)
	switch {
	case errors.Is(finalizeErr, domain.ErrSessionNotFound):
		api.WriteError(w, http.StatusNotFound, finalizeErr.Error())
	case errors.Is(finalizeErr, domain.ErrNotReady):
		// expected race with the transport callback, retryable
		api.WriteError(w, http.StatusConflict, finalizeErr.Error())
	case errors.Is(finalizeErr, domain.ErrAlreadyFinalized):
		api.WriteError(w, http.StatusConflict, finalizeErr.Error())
	case errors.Is(finalizeErr, domain.ErrSessionExpired):
		api.WriteError(w, http.StatusGone, finalizeErr.Error())
	case errors.Is(finalizeErr, domain.ErrValidation):
		api.WriteError(w, http.StatusBadRequest, finalizeErr.Error())
	case finalizeErr != nil:
		h.logger.Error("error finalizing upload", "upload_id", req.UploadID, "error", finalizeErr)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusCreated, V1FinalizeUploadResponse{
			VideoID:  result.VideoID,
			Permlink: result.Permlink,
		})
	}
}
