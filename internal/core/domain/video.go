package domain

import (
	"time"

	"github.com/google/uuid"
)

// VideoStatus represents the persisted pipeline status of a video
type VideoStatus string

const (
	VideoStatusUploaded          VideoStatus = "uploaded"
	VideoStatusEncodingIPFS      VideoStatus = "encoding_ipfs"
	VideoStatusEncodingPreparing VideoStatus = "encoding_preparing"
	VideoStatusEncodingProgress  VideoStatus = "encoding_progress"
	VideoStatusEncodingCompleted VideoStatus = "encoding_completed"
	VideoStatusPublished         VideoStatus = "published"
	VideoStatusPublishManual     VideoStatus = "publish_manual"
	VideoStatusFailed            VideoStatus = "failed"
	VideoStatusEncodingFailed    VideoStatus = "encoding_failed"
)

// videoStatusRank orders the linear pipeline. Published and publish_manual
// share the terminal rank; the failure statuses sit outside the ordering.
var videoStatusRank = map[VideoStatus]int{
	VideoStatusUploaded:          0,
	VideoStatusEncodingIPFS:      1,
	VideoStatusEncodingPreparing: 2,
	VideoStatusEncodingProgress:  3,
	VideoStatusEncodingCompleted: 4,
	VideoStatusPublished:         5,
	VideoStatusPublishManual:     5,
}

// Rank returns the position of the status in the pipeline, or -1 for
// failure statuses and unknown values.
func (s VideoStatus) Rank() int {
	rank, ok := videoStatusRank[s]
	if !ok {
		return -1
	}
	return rank
}

// IsFailure reports whether the status is one of the absorbing failures
func (s VideoStatus) IsFailure() bool {
	return s == VideoStatusFailed || s == VideoStatusEncodingFailed
}

// IsPublished reports whether the video reached a terminal success status.
// This is the only authoritative "done" signal in the pipeline.
func (s VideoStatus) IsPublished() bool {
	return s == VideoStatusPublished || s == VideoStatusPublishManual
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// move. Failures are reachable from any non-terminal status; anything else
// must strictly advance the pipeline rank.
func (s VideoStatus) CanTransitionTo(next VideoStatus) bool {
	if s.IsFailure() || s.IsPublished() {
		return false
	}
	if next.IsFailure() {
		return true
	}
	return next.Rank() > s.Rank()
}

// Video represents a video record in the upload/encode/publish pipeline
type Video struct {
	ID               uuid.UUID
	Owner            string
	Permlink         string
	Status           VideoStatus
	Title            string
	Description      string
	Tags             []string
	ThumbnailCID     string
	ContentCID       string
	Duration         float64
	EncodingProgress int
	EncodingJobID    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
