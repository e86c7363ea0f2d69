package port

import (
	"context"
	"io"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// InitResult is returned by UploadService.InitSession
type InitResult struct {
	UploadID    uuid.UUID
	TusEndpoint string
	ExpiresAt   time.Time
}

// FinalizeResult is returned by UploadService.Finalize
type FinalizeResult struct {
	VideoID  uuid.UUID
	Permlink string
}

// UploadService tracks upload sessions from init through finalize
type UploadService interface {
	InitSession(ctx context.Context, owner, originalFilename string, declaredSize int64, declaredDuration float64) (*InitResult, error)
	// MarkTransportCompleted is driven by the resumable transport's
	// completion hook, never by the client directly.
	MarkTransportCompleted(ctx context.Context, uploadID uuid.UUID) error
	MarkAbandoned(ctx context.Context, uploadID uuid.UUID) error
	Finalize(ctx context.Context, uploadID uuid.UUID, metadata domain.VideoMetadata) (*FinalizeResult, error)
	// Prepare is the legacy combined create flow with no upload session.
	Prepare(ctx context.Context, owner string, metadata domain.VideoMetadata, duration float64) (*FinalizeResult, error)
	AttachThumbnail(ctx context.Context, videoID uuid.UUID, filename string, r io.Reader) (string, error)
}
