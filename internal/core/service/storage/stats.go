package storage

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// GetDiskUsage reads capacity of the host partition holding the repo
func (s *storageService) GetDiskUsage(ctx context.Context) (*domain.DiskStats, error) {
	return s.disk.Usage(s.ipfsCfg.RepoPath)
}

// GetRepoStats reads repo usage from the pinning service
func (s *storageService) GetRepoStats(ctx context.Context) (*domain.RepoStats, error) {
	return s.pinning.RepoStat(ctx)
}

// GetStorageStats composes disk and repo usage and classifies health from
// disk usage. The three-tier classification is a dashboard contract.
func (s *storageService) GetStorageStats(ctx context.Context) (*domain.StorageStats, error) {
	disk, err := s.GetDiskUsage(ctx)
	if err != nil {
		return nil, err
	}

	repo, err := s.GetRepoStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.StorageStats{
		Disk:   *disk,
		Repo:   *repo,
		Health: domain.ClassifyHealth(disk.PercentUsed),
	}
	if disk.Total > 0 {
		stats.PercentOfDisk = float64(repo.RepoSize) / float64(disk.Total) * 100
	}
	return stats, nil
}
