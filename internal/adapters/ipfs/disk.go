package ipfs

import (
	"fmt"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"golang.org/x/sys/unix"
)

// DiskProber reads capacity of the partition behind a path via statfs
type DiskProber struct{}

// NewDiskProber returns DiskProber
func NewDiskProber() *DiskProber {
	return &DiskProber{}
}

// Usage returns total/used/available bytes and the used percentage for the
// partition holding path.
func (d *DiskProber) Usage(path string) (*domain.DiskStats, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("%w: statfs %s: %v", domain.ErrSystemQuery, path, err)
	}

	blockSize := uint64(stat.Bsize)
	total := stat.Blocks * blockSize
	available := stat.Bavail * blockSize
	used := total - stat.Bfree*blockSize

	if total == 0 {
		return nil, fmt.Errorf("%w: statfs %s reported zero capacity", domain.ErrSystemQuery, path)
	}

	return &domain.DiskStats{
		Total:       total,
		Used:        used,
		Available:   available,
		PercentUsed: float64(used) / float64(total) * 100,
	}, nil
}
