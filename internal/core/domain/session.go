package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadSession represents an in-flight resumable upload, from init until
// finalize hands ownership over to the created video record.
type UploadSession struct {
	ID               uuid.UUID
	Owner            string
	OriginalFilename string
	DeclaredSize     int64
	DeclaredDuration float64
	TusCompleted     bool
	Finalized        bool
	Abandoned        bool
	VideoID          *uuid.UUID
	ExpiresAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Expired reports whether the session is past its expiry at the given time
func (s *UploadSession) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// VideoMetadata is the client-supplied metadata accepted by finalize and
// the legacy prepare flow. Community arrives normalized to a bare name.
type VideoMetadata struct {
	Title       string
	Description string
	Tags        []string
	Community   string
}
