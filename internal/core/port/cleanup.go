package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup
type CleanupService interface {
	// CleanupExpiredSessions deletes sessions past expiry that never
	// finalized. Finalized sessions are owned by their video and kept.
	CleanupExpiredSessions(ctx context.Context, now time.Time) error
}
