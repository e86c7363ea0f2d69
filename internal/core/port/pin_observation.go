package port

import (
	"context"
	"time"
)

// PinObservationRepository persists the first time each pinned CID was
// observed. The pinning service has no native pin-time tracking, so age for
// the unpin safety window is measured from this stored timestamp; it must
// never be recomputed from "now" on later listings.
type PinObservationRepository interface {
	// Observe records seenAt for the CID if it has never been seen and
	// returns the stable first-observed time either way.
	Observe(ctx context.Context, cid string, seenAt time.Time) (time.Time, error)
	FirstSeen(ctx context.Context, cid string) (*time.Time, error)
	Delete(ctx context.Context, cid string) error
}
