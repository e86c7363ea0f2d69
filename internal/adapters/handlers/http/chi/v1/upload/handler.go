package upload

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	statusService port.StatusService
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(uploadService port.UploadService, statusService port.StatusService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: uploadService,
		statusService: statusService,
		logger:        logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/init", h.InitUploadV1)
	router.Post("/finalize", h.FinalizeUploadV1)
	router.Post("/prepare", h.PrepareUploadV1)
	router.Post("/thumbnail/{videoID}", h.AttachThumbnailV1)
	router.Get("/video/{videoID}/status", h.VideoStatusV1)
	router.Get("/in-progress", h.InProgressV1)

	return router
}
