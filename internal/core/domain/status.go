package domain

import "github.com/google/uuid"

// StatusPhase is the coarse sub-phase the merged status sits in
type StatusPhase string

const (
	PhaseWaiting   StatusPhase = "waiting"
	PhaseQueued    StatusPhase = "queued"
	PhaseDownload  StatusPhase = "download"
	PhaseEncode    StatusPhase = "encode"
	PhaseFinishing StatusPhase = "finishing"
	PhasePublished StatusPhase = "published"
	PhaseFailed    StatusPhase = "failed"
)

// StatusView is the reconciled, user-facing view of one video's pipeline
// state. Progress is monotonic across polls for a healthy pipeline; the raw
// sub-phase percentages are exposed separately so a fresh transcode at 0%
// after a finished download never reads as regression.
type StatusView struct {
	VideoID     uuid.UUID   `json:"videoId"`
	Status      VideoStatus `json:"status"`
	Phase       StatusPhase `json:"phase"`
	Label       string      `json:"label"`
	Progress    float64     `json:"progress"`
	DownloadPct float64     `json:"downloadPct"`
	EncodePct   float64     `json:"encodePct"`
	IsComplete  bool        `json:"isComplete"`
	IsFailed    bool        `json:"isFailed"`
}

// InProgressSummary tallies a user's active videos by coarse phase
type InProgressSummary struct {
	Queued          int     `json:"queued"`
	Encoding        int     `json:"encoding"`
	Finishing       int     `json:"finishing"`
	Failed          int     `json:"failed"`
	AverageProgress float64 `json:"averageProgress"`
}

// InProgressList is the aggregator's response for one owner
type InProgressList struct {
	Videos         []StatusView      `json:"videos"`
	Count          int               `json:"count"`
	Summary        InProgressSummary `json:"summary"`
	PollIntervalMS int               `json:"pollIntervalMs"`
}
