package domain

import "errors"

// ErrSessionNotFound is an error thrown when an upload session is not found
var ErrSessionNotFound = errors.New("upload session not found")

// ErrVideoNotFound is an error thrown when a video is not found
var ErrVideoNotFound = errors.New("video not found")

// ErrNotReady is returned when finalize is attempted before the resumable
// transport has reported completion. Callers should back off and retry.
var ErrNotReady = errors.New("upload not completed by transport yet")

// ErrAlreadyFinalized is returned when finalize is attempted on a session
// that has already produced a video. Not retryable.
var ErrAlreadyFinalized = errors.New("upload session already finalized")

// ErrSessionExpired is returned when a session is past its expiry
var ErrSessionExpired = errors.New("upload session expired")

// ErrValidation is the base error for rejected request input
var ErrValidation = errors.New("validation failed")

// ErrUpstreamUnavailable is returned when the pinning service cannot be reached
var ErrUpstreamUnavailable = errors.New("pinning service unavailable")

// ErrSystemQuery is returned when the host filesystem cannot be queried
var ErrSystemQuery = errors.New("system query failed")

// ErrGCFailed is returned when a repo garbage collection run fails upstream
var ErrGCFailed = errors.New("garbage collection failed")

// ErrPinTooYoung is returned when an unpin is refused by the age safety window
var ErrPinTooYoung = errors.New("pin is younger than the minimum age")

// ErrStatusRegression is returned when a status write would move a video
// backwards in the pipeline. The write is dropped, not applied.
var ErrStatusRegression = errors.New("video status regression rejected")
