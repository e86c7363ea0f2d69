package pipelineevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// jobStatusToVideoStatus maps encoder job states onto the persisted
// pipeline statuses they advance the record to.
var jobStatusToVideoStatus = map[domain.JobStatus]domain.VideoStatus{
	domain.JobStatusQueued:    domain.VideoStatusEncodingPreparing,
	domain.JobStatusRunning:   domain.VideoStatusEncodingProgress,
	domain.JobStatusComplete:  domain.VideoStatusEncodingCompleted,
	domain.JobStatusCompleted: domain.VideoStatusEncodingCompleted,
	domain.JobStatusFailed:    domain.VideoStatusEncodingFailed,
	domain.JobStatusCancelled: domain.VideoStatusEncodingFailed,
}

func (p *pipelineEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.PipelineEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal pipeline event: %v", err)
	}

	p.logger.Info("handling pipeline event", "type", event.Type, "upload_id", event.UploadID, "video_id", event.VideoID)

	switch event.Type {
	case domain.EventTypeTransportFinished:
		uploadID, err := uuid.Parse(event.UploadID)
		if err != nil {
			return fmt.Errorf("bad upload id in transport event: %v", err)
		}
		return p.uploadService.MarkTransportCompleted(ctx, uploadID)

	case domain.EventTypeTransportTerminated:
		uploadID, err := uuid.Parse(event.UploadID)
		if err != nil {
			return fmt.Errorf("bad upload id in transport event: %v", err)
		}
		return p.uploadService.MarkAbandoned(ctx, uploadID)

	case domain.EventTypeJobUpdate:
		return p.handleJobUpdate(ctx, event)

	default:
		// unknown events are acked, not redelivered forever
		p.logger.Warn("ignoring unknown pipeline event", "type", event.Type)
		return nil
	}
}

func (p *pipelineEventService) handleJobUpdate(ctx context.Context, event domain.PipelineEvent) error {
	videoID, err := uuid.Parse(event.VideoID)
	if err != nil {
		return fmt.Errorf("bad video id in job update: %v", err)
	}

	videoStatus, ok := jobStatusToVideoStatus[domain.JobStatus(event.Status)]
	if !ok {
		p.logger.Warn("ignoring job update with unknown status", "video_id", videoID, "status", event.Status)
		return nil
	}

	if event.JobID != "" {
		if err := p.uow.VideoRepo().UpdateEncodingJob(ctx, videoID, event.JobID, int(event.Progress.Pct)); err != nil {
			return err
		}
	}

	err = p.uow.VideoRepo().AdvanceStatus(ctx, videoID, videoStatus)
	if errors.Is(err, domain.ErrStatusRegression) {
		// a late write from an already-passed stage; drop it
		p.logger.Warn("dropped stale status write", "video_id", videoID, "status", videoStatus)
		return nil
	}
	return err
}
