package pipelineevent

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

type pipelineEventService struct {
	uow           port.UnitOfWork
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewPipelineEventService creates the message handler for pipeline events:
// resumable-transport hooks and encoder job updates.
func NewPipelineEventService(uow port.UnitOfWork, uploadService port.UploadService, logger *slog.Logger) port.MessageService {
	return &pipelineEventService{
		uow:           uow,
		uploadService: uploadService,
		logger:        logger,
	}
}
