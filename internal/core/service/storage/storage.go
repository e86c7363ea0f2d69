package storage

import (
	"log/slog"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
)

type storageService struct {
	pinning port.PinningService
	disk    port.DiskProber
	uow     port.UnitOfWork
	ipfsCfg config.IPFSConfig
	logger  *slog.Logger
}

// NewStorageService creates a new storage service
func NewStorageService(pinning port.PinningService, disk port.DiskProber, uow port.UnitOfWork, cfg config.IPFSConfig, logger *slog.Logger) port.StorageService {
	return &storageService{
		pinning: pinning,
		disk:    disk,
		uow:     uow,
		ipfsCfg: cfg,
		logger:  logger,
	}
}
