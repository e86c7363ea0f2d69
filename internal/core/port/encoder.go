package port

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// EncoderGateway is a read-only view into the external encoder's job store.
// The store is ephemeral: a nil job with a nil error means the job is
// unavailable, which is a legitimate state and not a fault.
type EncoderGateway interface {
	GetJob(ctx context.Context, jobID string) (*domain.EncodingJob, error)
}
