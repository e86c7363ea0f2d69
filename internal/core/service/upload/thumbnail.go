package upload

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AttachThumbnail stores the thumbnail bytes on the pinning service and
// links the resulting CID to the video.
func (u *uploadService) AttachThumbnail(ctx context.Context, videoID uuid.UUID, filename string, r io.Reader) (string, error) {
	if _, err := u.uow.VideoRepo().FindByID(ctx, videoID); err != nil {
		return "", err
	}

	cid, err := u.pinning.Add(ctx, filename, r)
	if err != nil {
		return "", err
	}

	if err := u.uow.VideoRepo().UpdateThumbnail(ctx, videoID, cid); err != nil {
		return "", err
	}

	u.logger.Info("thumbnail attached", "video_id", videoID, "cid", cid)

	return cid, nil
}
