package status

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
)

// Overall progress bands. Download occupies 5-30, transcode 30-95, and a
// finished job holds at 95 until the record itself flips to published. The
// ceiling below 100 keeps a lagging publish from looking done.
const (
	progressWaiting   = 2.0
	progressQueued    = 5.0
	progressEncodeLow = 30.0
	progressFinishing = 95.0
	progressPublished = 100.0
)

// GetVideoStatus loads the video record, best-effort fetches its live
// encoder job and reconciles the two.
func (s *statusService) GetVideoStatus(ctx context.Context, videoID uuid.UUID) (*domain.StatusView, error) {
	video, err := s.uow.VideoRepo().FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var job *domain.EncodingJob
	if video.EncodingJobID != nil {
		job, err = s.encoder.GetJob(ctx, *video.EncodingJobID)
		if err != nil {
			// job store is best-effort; reconcile from the record alone
			s.logger.Warn("encoder job lookup failed", "video_id", videoID, "error", err)
			job = nil
		}
	}

	view := Reconcile(video, job)
	return &view, nil
}

// Reconcile merges the persisted video status with the live encoder job
// into one view. Rules are applied in priority order and short-circuit:
//
//  1. a published record is the only authoritative "done" signal,
//     regardless of anything the job reports (including a stale failure);
//  2. a failed record or a failed/cancelled job is terminal failure;
//  3. an uploaded record is waiting for the encoder, no job exists yet;
//  4. with a live job, derive the sub-phase from it: download first, then
//     transcode, then holding near-ceiling while publish lags;
//  5. without a job, fall back to a label keyed on the record status alone.
func Reconcile(video *domain.Video, job *domain.EncodingJob) domain.StatusView {
	view := domain.StatusView{
		VideoID: video.ID,
		Status:  video.Status,
	}

	if video.Status.IsPublished() {
		view.Phase = domain.PhasePublished
		view.Progress = progressPublished
		view.DownloadPct = 100
		view.EncodePct = 100
		view.IsComplete = true
		if video.Status == domain.VideoStatusPublishManual {
			view.Label = "published (manual)"
		} else {
			view.Label = "published"
		}
		return view
	}

	if video.Status.IsFailure() || (job != nil && job.Status.IsFailure()) {
		view.Phase = domain.PhaseFailed
		view.IsFailed = true
		if job != nil && job.Status == domain.JobStatusCancelled {
			view.Label = "encoding cancelled"
		} else {
			view.Label = "failed"
		}
		return view
	}

	if video.Status == domain.VideoStatusUploaded {
		view.Phase = domain.PhaseWaiting
		view.Label = "waiting for encoder"
		view.Progress = progressWaiting
		return view
	}

	if job != nil {
		return reconcileFromJob(view, job)
	}

	return reconcileFromRecord(view, video)
}

func reconcileFromJob(view domain.StatusView, job *domain.EncodingJob) domain.StatusView {
	view.DownloadPct = job.Progress.DownloadPct
	view.EncodePct = job.Progress.Pct

	switch {
	case job.Status == domain.JobStatusQueued:
		view.Phase = domain.PhaseQueued
		view.Label = "queued"
		view.Progress = progressQueued

	case job.Status.IsDone():
		// the job being done is NOT the pipeline being done; publishing to
		// the ledger can lag unbounded, so hold below the ceiling and keep
		// the client polling until rule 1 fires.
		view.Phase = domain.PhaseFinishing
		view.Label = "encoding complete, publishing"
		view.Progress = progressFinishing
		view.DownloadPct = 100
		view.EncodePct = 100

	case job.Progress.DownloadPct < 100:
		// the encoder downloads the source before transcoding; surface that
		// sub-phase on its own so a transcode starting at 0% afterwards
		// never reads as regression
		view.Phase = domain.PhaseDownload
		view.Label = "encoder downloading source"
		view.Progress = progressQueued + job.Progress.DownloadPct*(progressEncodeLow-progressQueued)/100

	default:
		view.Phase = domain.PhaseEncode
		view.Label = "encoding"
		view.Progress = progressEncodeLow + job.Progress.Pct*(progressFinishing-progressEncodeLow)/100
	}
	return view
}

// reconcileFromRecord is the fallback when the record says the video is
// mid-encode but the ephemeral job store has nothing for it.
func reconcileFromRecord(view domain.StatusView, video *domain.Video) domain.StatusView {
	switch video.Status {
	case domain.VideoStatusEncodingIPFS:
		view.Phase = domain.PhaseQueued
		view.Label = "queued"
		view.Progress = progressQueued
	case domain.VideoStatusEncodingPreparing:
		view.Phase = domain.PhaseQueued
		view.Label = "preparing encoder"
		view.Progress = progressQueued
	case domain.VideoStatusEncodingProgress:
		view.Phase = domain.PhaseEncode
		view.Label = "encoding"
		view.EncodePct = float64(video.EncodingProgress)
		view.DownloadPct = 100
		view.Progress = progressEncodeLow + float64(video.EncodingProgress)*(progressFinishing-progressEncodeLow)/100
	case domain.VideoStatusEncodingCompleted:
		view.Phase = domain.PhaseFinishing
		view.Label = "encoding complete, publishing"
		view.Progress = progressFinishing
		view.DownloadPct = 100
		view.EncodePct = 100
	default:
		view.Phase = domain.PhaseWaiting
		view.Label = "processing"
		view.Progress = progressWaiting
	}
	return view
}
