package cleanup

import (
	"context"
	"time"
)

// CleanupExpiredSessions finds sessions past expiry that never finalized
// and deletes them. Finalized sessions are excluded by the repository
// query: ownership of those passed to the video record. A failure on one
// session is logged and does not stop the sweep.
func (c *cleanupService) CleanupExpiredSessions(ctx context.Context, now time.Time) error {

	sessions, err := c.uow.UploadSessionRepo().FindAllExpired(ctx, now)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		if err := c.uow.UploadSessionRepo().Delete(ctx, session.ID); err != nil {
			c.logger.Error("failed to delete expired session", "upload_id", session.ID, "err", err)
			continue
		}
		c.logger.Info("expired session reclaimed", "upload_id", session.ID, "owner", session.Owner)
	}

	c.logger.Info("expired session sweep completed", "count", len(sessions))
	return nil
}
