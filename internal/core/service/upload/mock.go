package upload

import (
	"context"
	"io"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) InitSession(ctx context.Context, owner, originalFilename string, declaredSize int64, declaredDuration float64) (*port.InitResult, error) {
	args := m.Called(ctx, owner, originalFilename, declaredSize, declaredDuration)
	return args.Get(0).(*port.InitResult), args.Error(1)
}

func (m *MockUploadService) MarkTransportCompleted(ctx context.Context, uploadID uuid.UUID) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

func (m *MockUploadService) MarkAbandoned(ctx context.Context, uploadID uuid.UUID) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

func (m *MockUploadService) Finalize(ctx context.Context, uploadID uuid.UUID, metadata domain.VideoMetadata) (*port.FinalizeResult, error) {
	args := m.Called(ctx, uploadID, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.FinalizeResult), args.Error(1)
}

func (m *MockUploadService) Prepare(ctx context.Context, owner string, metadata domain.VideoMetadata, duration float64) (*port.FinalizeResult, error) {
	args := m.Called(ctx, owner, metadata, duration)
	return args.Get(0).(*port.FinalizeResult), args.Error(1)
}

func (m *MockUploadService) AttachThumbnail(ctx context.Context, videoID uuid.UUID, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, videoID, filename, r)
	return args.String(0), args.Error(1)
}
