package status

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// ListInProgress batches the reconciled status of all of an owner's active
// videos (uploaded through encoding_progress) into one summary response.
func (s *statusService) ListInProgress(ctx context.Context, owner string) (*domain.InProgressList, error) {
	videos, err := s.uow.VideoRepo().FindInProgressByOwner(ctx, owner, InProgressLimit)
	if err != nil {
		return nil, err
	}

	list := &domain.InProgressList{
		Videos:         make([]domain.StatusView, 0, len(videos)),
		PollIntervalMS: PollIntervalMS,
	}

	var progressSum float64
	for i := range videos {
		video := &videos[i]

		var job *domain.EncodingJob
		if video.EncodingJobID != nil {
			job, err = s.encoder.GetJob(ctx, *video.EncodingJobID)
			if err != nil {
				s.logger.Warn("encoder job lookup failed", "video_id", video.ID, "error", err)
				job = nil
			}
		}

		view := Reconcile(video, job)
		list.Videos = append(list.Videos, view)
		progressSum += view.Progress

		switch {
		case view.IsFailed:
			list.Summary.Failed++
		case view.Phase == domain.PhaseWaiting || view.Phase == domain.PhaseQueued:
			list.Summary.Queued++
		case view.Phase == domain.PhaseFinishing:
			list.Summary.Finishing++
		default:
			list.Summary.Encoding++
		}
	}

	list.Count = len(list.Videos)
	if list.Count > 0 {
		list.Summary.AverageProgress = progressSum / float64(list.Count)
	}

	return list, nil
}
