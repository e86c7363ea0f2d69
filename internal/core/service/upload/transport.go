package upload

import (
	"context"

	"github.com/google/uuid"
)

// MarkTransportCompleted records that the resumable transport received all
// bytes for the session. Driven by the transport's post-finish hook so a
// client cannot claim a completion it did not perform.
func (u *uploadService) MarkTransportCompleted(ctx context.Context, uploadID uuid.UUID) error {
	if err := u.uow.UploadSessionRepo().MarkTransportCompleted(ctx, uploadID); err != nil {
		return err
	}
	u.logger.Info("transport completed", "upload_id", uploadID)
	return nil
}

// MarkAbandoned flags a session whose resumable upload was aborted by the
// client. Not an error condition; the reaper will collect it.
func (u *uploadService) MarkAbandoned(ctx context.Context, uploadID uuid.UUID) error {
	if err := u.uow.UploadSessionRepo().MarkAbandoned(ctx, uploadID); err != nil {
		return err
	}
	u.logger.Info("upload abandoned", "upload_id", uploadID)
	return nil
}
