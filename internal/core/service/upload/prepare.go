package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
)

// Prepare is the legacy combined create flow: it creates the video record
// directly with no upload session backing it.
func (u *uploadService) Prepare(ctx context.Context, owner string, metadata domain.VideoMetadata, duration float64) (*port.FinalizeResult, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
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
		Owner:       owner,
		Permlink:    permlink,
		Status:      domain.VideoStatusUploaded,
		Title:       metadata.Title,
		Description: metadata.Description,
		Tags:        metadata.Tags,
		Duration:    duration,
	}

	if err := u.uow.VideoRepo().Create(ctx, video); err != nil {
		return nil, err
	}

	u.logger.Info("video prepared (legacy flow)", "video_id", video.ID, "owner", owner)

	return &port.FinalizeResult{VideoID: video.ID, Permlink: permlink}, nil
}
