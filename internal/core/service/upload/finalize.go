package upload

import (
	"context"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
)

// Finalize turns a completed upload session into a video record. It is
// effectively exclusive per session: the finalized flag is flipped with an
// atomic check-and-set inside the transaction, so a duplicate submission
// gets ErrAlreadyFinalized and exactly one video is ever created.
func (u *uploadService) Finalize(ctx context.Context, uploadID uuid.UUID, metadata domain.VideoMetadata) (*port.FinalizeResult, error) {
	session, err := u.uow.UploadSessionRepo().FindByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	if session.Finalized {
		return nil, domain.ErrAlreadyFinalized
	}
	if session.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}
	// The transport callback may race the client's finalize call; callers
	// treat this as retryable and back off.
	if !session.TusCompleted {
		return nil, domain.ErrNotReady
	}

	if err := u.validateMetadata(&metadata); err != nil {
		return nil, err
	}

	permlink, err := generatePermlink()
	if err != nil {
		return nil, err
	}

	video := domain.Video{
		ID:          uuid.New(),
		Owner:       session.Owner,
		Permlink:    permlink,
		Status:      domain.VideoStatusUploaded,
		Title:       metadata.Title,
		Description: metadata.Description,
		Tags:        metadata.Tags,
		Duration:    session.DeclaredDuration,
	}

	txErr := u.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if err := uow.UploadSessionRepo().Finalize(ctx, session.ID, video.ID); err != nil {
			return err
		}
		return uow.VideoRepo().Create(ctx, video)
	})
	if txErr != nil {
		return nil, txErr
	}

	u.logger.Info("upload finalized", "upload_id", uploadID, "video_id", video.ID, "permlink", permlink)

	return &port.FinalizeResult{VideoID: video.ID, Permlink: permlink}, nil
}
