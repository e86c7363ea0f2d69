package port

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// VideoRepository is an interface to interact with video records
type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	// FindInProgressByOwner lists the owner's active videos (uploaded
	// through encoding_progress), newest first, capped at limit. Completed,
	// published and failed records are excluded.
	FindInProgressByOwner(ctx context.Context, owner string, limit int) ([]domain.Video, error)
	// AdvanceStatus applies the forward-only transition guard inside the
	// update; a write that would regress returns domain.ErrStatusRegression.
	AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.VideoStatus) error
	UpdateEncodingJob(ctx context.Context, id uuid.UUID, jobID string, progress int) error
	UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailCID string) error
}
