package port

import (
	"context"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// UploadSessionRepository is an interface to interact with upload sessions
type UploadSessionRepository interface {
	Create(ctx context.Context, session domain.UploadSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error)
	MarkTransportCompleted(ctx context.Context, id uuid.UUID) error
	MarkAbandoned(ctx context.Context, id uuid.UUID) error
	// Finalize atomically flips finalized to true and links the video. It
	// returns domain.ErrAlreadyFinalized when another finalize won the race.
	Finalize(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error
	FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
