package domain

// JobStatus represents the status of an encoding job as reported by the
// external encoder. The job store is ephemeral; a job may be missing for a
// video that is legitimately mid-pipeline.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusComplete  JobStatus = "complete"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// IsDone reports whether the encoder considers the job finished. This is
// NOT the pipeline's done signal; only a published video record is.
func (s JobStatus) IsDone() bool {
	return s == JobStatusComplete || s == JobStatusCompleted
}

// IsFailure reports whether the job ended in failure or was cancelled
func (s JobStatus) IsFailure() bool {
	return s == JobStatusFailed || s == JobStatusCancelled
}

// JobProgress carries the encoder's two-stage progress. DownloadPct
// saturates to 100 before Pct advances meaningfully.
type JobProgress struct {
	Pct         float64 `json:"pct"`
	DownloadPct float64 `json:"download_pct"`
}

// EncodingJob is the live, read-only view of an encoder job
type EncodingJob struct {
	ID       string      `json:"id"`
	Status   JobStatus   `json:"status"`
	Progress JobProgress `json:"progress"`
}
