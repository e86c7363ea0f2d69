package storage

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 storage-admin routes
type HandlerV1 struct {
	storageService port.StorageService
	logger         *slog.Logger
}

// NewStorageHandlerV1 creates HandlerV1
func NewStorageHandlerV1(storageService port.StorageService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		storageService: storageService,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", h.StatsV1)
	router.Get("/pinned", h.PinnedV1)
	router.Get("/unpinned", h.UnpinnedV1)
	router.Post("/unpin", h.UnpinV1)
	router.Post("/gc", h.RunGCV1)
	router.Get("/health", h.HealthV1)

	return router
}
