package ipfs

import (
	"context"
	"io"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockPinningService is a mock implementation of PinningService
type MockPinningService struct {
	mock.Mock
}

// NewMockPinningService creates a new MockPinningService
func NewMockPinningService() *MockPinningService {
	return &MockPinningService{}
}

func (m *MockPinningService) ListRecursivePins(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPinningService) ObjectSize(ctx context.Context, cid string) (int64, error) {
	args := m.Called(ctx, cid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPinningService) Unpin(ctx context.Context, cid string) error {
	args := m.Called(ctx, cid)
	return args.Error(0)
}

func (m *MockPinningService) RepoStat(ctx context.Context) (*domain.RepoStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(*domain.RepoStats), args.Error(1)
}

func (m *MockPinningService) RunGC(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPinningService) Add(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

// MockDiskProber is a mock implementation of DiskProber
type MockDiskProber struct {
	mock.Mock
}

// NewMockDiskProber creates a new MockDiskProber
func NewMockDiskProber() *MockDiskProber {
	return &MockDiskProber{}
}

func (m *MockDiskProber) Usage(path string) (*domain.DiskStats, error) {
	args := m.Called(path)
	return args.Get(0).(*domain.DiskStats), args.Error(1)
}
