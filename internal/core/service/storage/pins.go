package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// ListPinnedFiles enumerates all recursively-pinned CIDs with their sizes
// and age. A failed size lookup degrades to zero, never drops the entry.
// The pin timestamp is the persisted first-observed time per CID; the
// pinning service itself has no pin-time tracking.
func (s *storageService) ListPinnedFiles(ctx context.Context) ([]domain.PinEntry, error) {
	cids, err := s.pinning.ListRecursivePins(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	obsRepo := s.uow.PinObservationRepo()

	entries := make([]domain.PinEntry, 0, len(cids))
	for _, cid := range cids {
		size, err := s.pinning.ObjectSize(ctx, cid)
		if err != nil {
			s.logger.Warn("pin size lookup failed, defaulting to 0", "cid", cid, "error", err)
			size = 0
		}

		pinnedAt, err := obsRepo.Observe(ctx, cid, now)
		if err != nil {
			return nil, err
		}

		age := now.Sub(pinnedAt)
		entries = append(entries, domain.PinEntry{
			CID:      cid,
			Size:     size,
			PinnedAt: pinnedAt,
			AgeHours: age.Hours(),
			Eligible: age >= domain.MinPinAge,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].PinnedAt.Before(entries[j].PinnedAt)
	})
	return entries, nil
}

// UnpinFiles attempts to unpin every requested CID. Failures are isolated
// per item: each requested CID lands in exactly one of the two result
// lists and a single failure never aborts the batch. Without force, any
// pin younger than the safety window is refused.
func (s *storageService) UnpinFiles(ctx context.Context, cids []string, force bool) (*domain.UnpinResult, error) {
	if len(cids) == 0 {
		return nil, fmt.Errorf("%w: cids must not be empty", domain.ErrValidation)
	}

	now := time.Now()
	result := &domain.UnpinResult{
		Success: []string{},
		Failed:  []domain.UnpinFailure{},
	}

	for _, cid := range cids {
		if !force {
			if err := s.checkPinAge(ctx, cid, now); err != nil {
				result.Failed = append(result.Failed, domain.UnpinFailure{CID: cid, Error: err.Error()})
				continue
			}
		}

		if err := s.pinning.Unpin(ctx, cid); err != nil {
			s.logger.Warn("unpin failed", "cid", cid, "error", err)
			result.Failed = append(result.Failed, domain.UnpinFailure{CID: cid, Error: err.Error()})
			continue
		}

		if err := s.uow.PinObservationRepo().Delete(ctx, cid); err != nil {
			s.logger.Warn("failed to drop pin observation", "cid", cid, "error", err)
		}
		result.Success = append(result.Success, cid)
	}

	return result, nil
}

func (s *storageService) checkPinAge(ctx context.Context, cid string, now time.Time) error {
	firstSeen, err := s.uow.PinObservationRepo().FirstSeen(ctx, cid)
	if err != nil {
		return err
	}
	// never observed: age is unknown, treat as too young rather than
	// risking premature deletion
	if firstSeen == nil {
		return fmt.Errorf("%w: %s has no recorded pin time", domain.ErrPinTooYoung, cid)
	}
	if age := now.Sub(*firstSeen); age < domain.MinPinAge {
		return fmt.Errorf("%w: %s pinned %.1fh ago", domain.ErrPinTooYoung, cid, age.Hours())
	}
	return nil
}

// EstimateReclaimableSpace guesses how much the next GC could free. The
// pinning protocol exposes no "unpinned but uncollected" view, so this is
// repo size minus the pinned total, clamped at zero and always labeled
// approximate.
func (s *storageService) EstimateReclaimableSpace(ctx context.Context) (*domain.ReclaimEstimate, error) {
	repo, err := s.pinning.RepoStat(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ListPinnedFiles(ctx)
	if err != nil {
		return nil, err
	}

	var pinnedTotal int64
	for _, entry := range entries {
		pinnedTotal += entry.Size
	}

	estimated := repo.RepoSize - pinnedTotal
	if estimated < 0 {
		estimated = 0
	}
	return &domain.ReclaimEstimate{EstimatedBytes: estimated, Approximate: true}, nil
}
