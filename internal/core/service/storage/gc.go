package storage

import (
	"context"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// RunGarbageCollection snapshots repo size, runs a GC pass and reports the
// space freed. GC is idempotent: a second run with nothing newly unpinned
// frees ~0. Space freed can come out slightly negative under concurrent
// writes; that is clamped in reporting, not treated as an error. There is
// no deduplication of concurrent invocations.
func (s *storageService) RunGarbageCollection(ctx context.Context) (*domain.GCResult, error) {
	before, err := s.pinning.RepoStat(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := s.pinning.RunGC(ctx); err != nil {
		return nil, err
	}
	duration := time.Since(start)

	after, err := s.pinning.RepoStat(ctx)
	if err != nil {
		return nil, err
	}

	freed := before.RepoSize - after.RepoSize
	if freed < 0 {
		freed = 0
	}

	s.logger.Info("garbage collection completed",
		"space_freed", freed,
		"duration", duration,
		"repo_size_after", after.RepoSize,
	)

	return &domain.GCResult{
		RepoSizeBefore: before.RepoSize,
		RepoSizeAfter:  after.RepoSize,
		SpaceFreed:     freed,
		Duration:       duration,
	}, nil
}
