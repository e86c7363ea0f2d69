package storage

import (
	"context"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockStorageService is a mock implementation of StorageService
type MockStorageService struct {
	mock.Mock
}

// NewMockStorageService creates a new MockStorageService
func NewMockStorageService() *MockStorageService {
	return &MockStorageService{}
}

func (m *MockStorageService) GetDiskUsage(ctx context.Context) (*domain.DiskStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*domain.DiskStats)
	return stats, args.Error(1)
}

func (m *MockStorageService) GetRepoStats(ctx context.Context) (*domain.RepoStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*domain.RepoStats)
	return stats, args.Error(1)
}

func (m *MockStorageService) GetStorageStats(ctx context.Context) (*domain.StorageStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*domain.StorageStats)
	return stats, args.Error(1)
}

func (m *MockStorageService) ListPinnedFiles(ctx context.Context) ([]domain.PinEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.PinEntry)
	return entries, args.Error(1)
}

func (m *MockStorageService) UnpinFiles(ctx context.Context, cids []string, force bool) (*domain.UnpinResult, error) {
	args := m.Called(ctx, cids, force)
	result, _ := args.Get(0).(*domain.UnpinResult)
	return result, args.Error(1)
}

func (m *MockStorageService) EstimateReclaimableSpace(ctx context.Context) (*domain.ReclaimEstimate, error) {
	args := m.Called(ctx)
	estimate, _ := args.Get(0).(*domain.ReclaimEstimate)
	return estimate, args.Error(1)
}

func (m *MockStorageService) RunGarbageCollection(ctx context.Context) (*domain.GCResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*domain.GCResult)
	return result, args.Error(1)
}
