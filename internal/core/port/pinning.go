package port

import (
	"context"
	"io"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// PinningService is an interface to the IPFS node HTTP API
type PinningService interface {
	// ListRecursivePins returns all recursively-pinned CIDs.
	ListRecursivePins(ctx context.Context) ([]string, error)
	// ObjectSize returns the cumulative size of the DAG behind a CID.
	ObjectSize(ctx context.Context, cid string) (int64, error)
	Unpin(ctx context.Context, cid string) error
	RepoStat(ctx context.Context) (*domain.RepoStats, error)
	// RunGC blocks until the repo garbage collection pass finishes.
	RunGC(ctx context.Context) error
	// Add stores content and returns its CID.
	Add(ctx context.Context, name string, r io.Reader) (string, error)
}

// DiskProber queries capacity of the host partition holding the repo
type DiskProber interface {
	Usage(path string) (*domain.DiskStats, error)
}
