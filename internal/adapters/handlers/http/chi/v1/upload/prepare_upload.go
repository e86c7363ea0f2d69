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

// V1PrepareUploadRequest is the body request for the legacy combined create
// flow, where the client registers metadata without an upload session.
type V1PrepareUploadRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Community   json.RawMessage `json:"community,omitempty"`
	Duration    float64         `json:"duration"`
}

// V1PrepareUploadResponse is the response for Prepare Upload
type V1PrepareUploadResponse struct {
	VideoID  uuid.UUID `json:"video_id"`
	Permlink string    `json:"permlink"`
}

// PrepareUploadV1 is the legacy combined create handler
func (h *HandlerV1) PrepareUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1PrepareUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding prepare request", "error", err)
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	community, err := uploadservice.NormalizeCommunity(req.Community)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	owner := api.UserFromContext(r.Context())
	metadata := domain.VideoMetadata{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Community:   community,
	}

	result, prepareErr := h.uploadService.Prepare(r.Context(), owner, metadata, req.Duration)
	switch {
	case errors.Is(prepareErr, domain.ErrValidation):
		api.WriteError(w, http.StatusBadRequest, prepareErr.Error())
	case prepareErr != nil:
		h.logger.Error("error preparing upload", "error", prepareErr)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
	default:
		api.WriteData(w, http.StatusCreated, V1PrepareUploadResponse{
			VideoID:  result.VideoID,
			Permlink: result.Permlink,
		})
	}
}
