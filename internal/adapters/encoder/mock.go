package encoder

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of EncoderGateway
type MockGateway struct {
	mock.Mock
}

// NewMockGateway creates a new MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) GetJob(ctx context.Context, jobID string) (*domain.EncodingJob, error) {
	args := m.Called(ctx, jobID)
	job, _ := args.Get(0).(*domain.EncodingJob)
	return job, args.Error(1)
}
