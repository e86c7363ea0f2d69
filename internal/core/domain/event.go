package domain

// PipelineEventType discriminates messages on the pipeline subject
type PipelineEventType string

const (
	// EventTypeTransportFinished is emitted by the resumable transport's
	// post-finish hook once all bytes have been received.
	EventTypeTransportFinished PipelineEventType = "transport-finished"
	// EventTypeTransportTerminated is emitted when the client aborts the
	// resumable upload.
	EventTypeTransportTerminated PipelineEventType = "transport-terminated"
	// EventTypeJobUpdate carries an encoder job status change.
	EventTypeJobUpdate PipelineEventType = "job-update"
	EventTypeUnknown   PipelineEventType = "unknown"
)

// PipelineEvent is the wire shape of messages consumed from the broker.
// Transport events carry UploadID; job updates carry VideoID and the job
// fields.
type PipelineEvent struct {
	Type     PipelineEventType `json:"type"`
	UploadID string            `json:"upload_id,omitempty"`
	VideoID  string            `json:"video_id,omitempty"`
	JobID    string            `json:"job_id,omitempty"`
	Status   string            `json:"status,omitempty"`
	Progress JobProgress       `json:"progress"`
}
