package cleanup

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

type cleanupService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:    uow,
		logger: logger,
	}
}
