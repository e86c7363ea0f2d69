package port

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// StatusService merges persisted video state with live encoder job state
// into one consistent view, and batches it across a user's active videos.
// Both operations are side-effect-free reads, so any polling cadence is safe.
type StatusService interface {
	GetVideoStatus(ctx context.Context, videoID uuid.UUID) (*domain.StatusView, error)
	ListInProgress(ctx context.Context, owner string) (*domain.InProgressList, error)
}
