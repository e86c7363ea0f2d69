package port

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// StorageService exposes the storage dashboard operations: usage stats,
// pin inventory and the reclamation workflow.
type StorageService interface {
	GetDiskUsage(ctx context.Context) (*domain.DiskStats, error)
	GetRepoStats(ctx context.Context) (*domain.RepoStats, error)
	GetStorageStats(ctx context.Context) (*domain.StorageStats, error)
	ListPinnedFiles(ctx context.Context) ([]domain.PinEntry, error)
	UnpinFiles(ctx context.Context, cids []string, force bool) (*domain.UnpinResult, error)
	EstimateReclaimableSpace(ctx context.Context) (*domain.ReclaimEstimate, error)
	RunGarbageCollection(ctx context.Context) (*domain.GCResult, error)
}
