package upload

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/api"

	"github.com/google/uuid"
)

// V1InitUploadRequest is the body request for Init Upload
type V1InitUploadRequest struct {
	Filename  string  `json:"filename"`
	SizeBytes int64   `json:"size_bytes"`
	Duration  float64 `json:"duration"`
}

// V1InitUploadResponse is the response for Init Upload
type V1InitUploadResponse struct {
	UploadID    uuid.UUID `json:"upload_id"`
	TusEndpoint string    `json:"tus_endpoint"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// InitUploadV1 creates an upload session and points the client at the
// resumable transport endpoint.
func (h *HandlerV1) InitUploadV1(w http.ResponseWriter, r *http.Request) {

	var req V1InitUploadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding init upload request", "error", err)
		api.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Filename == "" {
		api.WriteError(w, http.StatusBadRequest, "filename required")
		return
	}

	owner := api.UserFromContext(r.Context())

	result, err := h.uploadService.InitSession(r.Context(), owner, req.Filename, req.SizeBytes, req.Duration)
	if err != nil {
		h.logger.Error("error creating upload session", "error", err)
		api.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	api.WriteData(w, http.StatusCreated, V1InitUploadResponse{
		UploadID:    result.UploadID,
		TusEndpoint: result.TusEndpoint,
		ExpiresAt:   result.ExpiresAt,
	})
}
