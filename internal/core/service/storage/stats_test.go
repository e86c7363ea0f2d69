package storage_test

import (
	"context"
	"testing"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/ipfs"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/repository"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStorageStats_ComposesDiskAndRepo(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockPinning := ipfs.NewMockPinningService()
	mockDisk := ipfs.NewMockDiskProber()
	service := newTestService(mockPinning, mockDisk, repository.NewMockUnitOfWork())

	mockDisk.On("Usage", "/data/ipfs").Return(&domain.DiskStats{
		Total:       1000,
		Used:        500,
		Available:   500,
		PercentUsed: 50,
	}, nil)
	mockPinning.On("RepoStat", ctx).Return(&domain.RepoStats{RepoSize: 250, StorageMax: 900, NumObjects: 7}, nil)

	// Act
	stats, err := service.GetStorageStats(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.HealthGreen, stats.Health)
	assert.InDelta(t, 25.0, stats.PercentOfDisk, 0.01)
	assert.Equal(t, int64(7), stats.Repo.NumObjects)
	mockDisk.AssertExpectations(t)
	mockPinning.AssertExpectations(t)
}

func TestGetStorageStats_HealthFollowsDiskUsage(t *testing.T) {
	tests := []struct {
		name        string
		percentUsed float64
		expected    domain.HealthLevel
	}{
		{"healthy", 60, domain.HealthGreen},
		{"warning", 61, domain.HealthYellow},
		{"still warning", 80, domain.HealthYellow},
		{"critical", 81, domain.HealthRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockPinning := ipfs.NewMockPinningService()
			mockDisk := ipfs.NewMockDiskProber()
			service := newTestService(mockPinning, mockDisk, repository.NewMockUnitOfWork())

			mockDisk.On("Usage", "/data/ipfs").Return(&domain.DiskStats{Total: 100, PercentUsed: tt.percentUsed}, nil)
			mockPinning.On("RepoStat", ctx).Return(&domain.RepoStats{RepoSize: 10}, nil)

			stats, err := service.GetStorageStats(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, stats.Health)
		})
	}
}

func TestGetStorageStats_DiskProbeFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDisk := ipfs.NewMockDiskProber()
	service := newTestService(ipfs.NewMockPinningService(), mockDisk, repository.NewMockUnitOfWork())

	mockDisk.On("Usage", "/data/ipfs").Return((*domain.DiskStats)(nil), domain.ErrSystemQuery)

	// Act
	_, err := service.GetStorageStats(ctx)

	// Assert
	assert.ErrorIs(t, err, domain.ErrSystemQuery)
}

func TestGetRepoStats_UpstreamFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockPinning := ipfs.NewMockPinningService()
	service := newTestService(mockPinning, ipfs.NewMockDiskProber(), repository.NewMockUnitOfWork())

	mockPinning.On("RepoStat", ctx).Return((*domain.RepoStats)(nil), domain.ErrUpstreamUnavailable)

	// Act
	_, err := service.GetRepoStats(ctx)

	// Assert
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
