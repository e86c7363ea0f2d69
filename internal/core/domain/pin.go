package domain

import "time"

// MinPinAge is the minimum age of a pin before it can be unpinned without
// force. This prevents deleting content that is still being encoded or
// replicated.
const MinPinAge = 24 * time.Hour

// PinEntry is one recursively-pinned CID in the repo listing. PinnedAt is
// the first time this process (or a predecessor, via persistence) observed
// the pin; the pinning service does not track pin time natively.
type PinEntry struct {
	CID      string    `json:"cid"`
	Size     int64     `json:"size"`
	PinnedAt time.Time `json:"pinnedAt"`
	AgeHours float64   `json:"ageHours"`
	// Eligible is true once the pin is older than MinPinAge.
	Eligible bool `json:"eligible"`
}

// UnpinFailure records one CID that could not be unpinned
type UnpinFailure struct {
	CID   string `json:"cid"`
	Error string `json:"error"`
}

// UnpinResult is the aggregate outcome of a bulk unpin. A per-CID failure
// never aborts the batch; every requested CID lands in exactly one list.
type UnpinResult struct {
	Success []string       `json:"success"`
	Failed  []UnpinFailure `json:"failed"`
}

// GCResult reports one garbage collection run
type GCResult struct {
	RepoSizeBefore int64         `json:"repoSizeBefore"`
	RepoSizeAfter  int64         `json:"repoSizeAfter"`
	SpaceFreed     int64         `json:"spaceFreed"`
	Duration       time.Duration `json:"duration"`
}

// ReclaimEstimate is a best-effort guess at reclaimable space. The pinning
// protocol exposes no exact "unpinned but uncollected" view.
type ReclaimEstimate struct {
	EstimatedBytes int64 `json:"estimatedBytes"`
	Approximate    bool  `json:"approximate"`
}

// DiskStats describes the host partition holding the repo
type DiskStats struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Available   uint64  `json:"available"`
	PercentUsed float64 `json:"percentUsed"`
}

// RepoStats mirrors the pinning service's repo-stat endpoint
type RepoStats struct {
	RepoSize   int64 `json:"repoSize"`
	StorageMax int64 `json:"storageMax"`
	NumObjects int64 `json:"numObjects"`
}

// HealthLevel is the three-tier classification the dashboard depends on
type HealthLevel string

const (
	HealthGreen  HealthLevel = "green"
	HealthYellow HealthLevel = "yellow"
	HealthRed    HealthLevel = "red"
)

// ClassifyHealth maps disk usage percentage onto the dashboard's tiers:
// <=60 green, 61-80 yellow, >80 red.
func ClassifyHealth(percentUsed float64) HealthLevel {
	switch {
	case percentUsed <= 60:
		return HealthGreen
	case percentUsed <= 80:
		return HealthYellow
	default:
		return HealthRed
	}
}

// StorageStats composes disk and repo usage for the dashboard
type StorageStats struct {
	Disk          DiskStats   `json:"disk"`
	Repo          RepoStats   `json:"repo"`
	PercentOfDisk float64     `json:"percentOfDisk"`
	Health        HealthLevel `json:"health"`
}
