package repository

import (
	"context"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindInProgressByOwner(ctx context.Context, owner string, limit int) ([]domain.Video, error) {
	args := m.Called(ctx, owner, limit)
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.VideoStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateEncodingJob(ctx context.Context, id uuid.UUID, jobID string, progress int) error {
	args := m.Called(ctx, id, jobID, progress)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailCID string) error {
	args := m.Called(ctx, id, thumbnailCID)
	return args.Error(0)
}

// MockUploadSessionRepository is a mock implementation of UploadSessionRepository
type MockUploadSessionRepository struct {
	mock.Mock
}

func (m *MockUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) MarkTransportCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) MarkAbandoned(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) Finalize(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

func (m *MockUploadSessionRepository) FindAllExpired(ctx context.Context, now time.Time) ([]domain.UploadSession, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.UploadSession), args.Error(1)
}

func (m *MockUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPinObservationRepository is a mock implementation of PinObservationRepository
type MockPinObservationRepository struct {
	mock.Mock
}

func (m *MockPinObservationRepository) Observe(ctx context.Context, cid string, seenAt time.Time) (time.Time, error) {
	args := m.Called(ctx, cid, seenAt)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockPinObservationRepository) FirstSeen(ctx context.Context, cid string) (*time.Time, error) {
	args := m.Called(ctx, cid)
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockPinObservationRepository) Delete(ctx context.Context, cid string) error {
	args := m.Called(ctx, cid)
	return args.Error(0)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Execute runs the
// given function against the mock itself so inner repository expectations
// still fire, then returns the configured error.
type MockUnitOfWork struct {
	mock.Mock
	videoRepo          *MockVideoRepository
	uploadSessionRepo  *MockUploadSessionRepository
	pinObservationRepo *MockPinObservationRepository
}

// NewMockUnitOfWork creates a new MockUnitOfWork
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo:          &MockVideoRepository{},
		uploadSessionRepo:  &MockUploadSessionRepository{},
		pinObservationRepo: &MockPinObservationRepository{},
	}
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	fn(m)
	return args.Error(0)
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) UploadSessionRepo() port.UploadSessionRepository {
	return m.uploadSessionRepo
}

func (m *MockUnitOfWork) PinObservationRepo() port.PinObservationRepository {
	return m.pinObservationRepo
}

// GetVideoRepoMock exposes the underlying video repo mock
func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}

// GetUploadSessionRepoMock exposes the underlying session repo mock
func (m *MockUnitOfWork) GetUploadSessionRepoMock() *MockUploadSessionRepository {
	return m.uploadSessionRepo
}

// GetPinObservationRepoMock exposes the underlying pin observation repo mock
func (m *MockUnitOfWork) GetPinObservationRepoMock() *MockPinObservationRepository {
	return m.pinObservationRepo
}
