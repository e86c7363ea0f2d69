package status_test

import (
	"context"
	"testing"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/encoder"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/repository"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/status"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListInProgress_Empty(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockEncoder := encoder.NewMockGateway()
	service := status.NewStatusService(mockUow, mockEncoder, discardLogger())

	mockUow.GetVideoRepoMock().
		On("FindInProgressByOwner", ctx, "alice", status.InProgressLimit).
		Return([]domain.Video{}, nil)

	// Act
	list, err := service.ListInProgress(ctx, "alice")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, list.Videos)
	assert.Equal(t, 0, list.Count)
	assert.Equal(t, domain.InProgressSummary{}, list.Summary)
	assert.Equal(t, status.PollIntervalMS, list.PollIntervalMS)
}

func TestListInProgress_SummaryTally(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockEncoder := encoder.NewMockGateway()
	service := status.NewStatusService(mockUow, mockEncoder, discardLogger())

	jobRunning := "job-running"
	jobDone := "job-done"
	jobFailed := "job-failed"

	videos := []domain.Video{
		{ID: uuid.New(), Status: domain.VideoStatusUploaded},
		{ID: uuid.New(), Status: domain.VideoStatusEncodingProgress, EncodingJobID: &jobRunning},
		{ID: uuid.New(), Status: domain.VideoStatusEncodingProgress, EncodingJobID: &jobDone},
		{ID: uuid.New(), Status: domain.VideoStatusEncodingProgress, EncodingJobID: &jobFailed},
	}

	mockUow.GetVideoRepoMock().
		On("FindInProgressByOwner", ctx, "bob", status.InProgressLimit).
		Return(videos, nil)
	mockEncoder.On("GetJob", ctx, jobRunning).Return(&domain.EncodingJob{
		Status:   domain.JobStatusRunning,
		Progress: domain.JobProgress{Pct: 50, DownloadPct: 100},
	}, nil)
	mockEncoder.On("GetJob", ctx, jobDone).Return(&domain.EncodingJob{
		Status: domain.JobStatusCompleted,
	}, nil)
	mockEncoder.On("GetJob", ctx, jobFailed).Return(&domain.EncodingJob{
		Status: domain.JobStatusFailed,
	}, nil)

	// Act
	list, err := service.ListInProgress(ctx, "bob")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, list.Count)
	assert.Equal(t, 1, list.Summary.Queued)
	assert.Equal(t, 1, list.Summary.Encoding)
	assert.Equal(t, 1, list.Summary.Finishing)
	assert.Equal(t, 1, list.Summary.Failed)
	assert.Greater(t, list.Summary.AverageProgress, float64(0))
	mockEncoder.AssertExpectations(t)
}

func TestListInProgress_RepoError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockEncoder := encoder.NewMockGateway()
	service := status.NewStatusService(mockUow, mockEncoder, discardLogger())

	mockUow.GetVideoRepoMock().
		On("FindInProgressByOwner", ctx, "carol", status.InProgressLimit).
		Return([]domain.Video{}, assert.AnError)

	// Act
	list, err := service.ListInProgress(ctx, "carol")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, list)
}
