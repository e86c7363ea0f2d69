package status

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStatusService is a mock implementation of StatusService
type MockStatusService struct {
	mock.Mock
}

// NewMockStatusService creates a new MockStatusService
func NewMockStatusService() *MockStatusService {
	return &MockStatusService{}
}

func (m *MockStatusService) GetVideoStatus(ctx context.Context, videoID uuid.UUID) (*domain.StatusView, error) {
	args := m.Called(ctx, videoID)
	view, _ := args.Get(0).(*domain.StatusView)
	return view, args.Error(1)
}

func (m *MockStatusService) ListInProgress(ctx context.Context, owner string) (*domain.InProgressList, error) {
	args := m.Called(ctx, owner)
	list, _ := args.Get(0).(*domain.InProgressList)
	return list, args.Error(1)
}
