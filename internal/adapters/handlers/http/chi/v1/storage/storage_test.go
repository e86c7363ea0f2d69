package storage_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi"
	storage2 "github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/storage"
	upload2 "github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
	statusservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/status"
	storageservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/storage"
	uploadservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAdminCfg = config.StorageAdminConfig{Username: "admin", Password: "secret"}

func newTestRouter(storageSvc port.StorageService, adminCfg config.StorageAdminConfig) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploadHandler := upload2.NewUploadHandlerV1(uploadservice.NewMockUploadService(), statusservice.NewMockStatusService(), discardLogger)
	storageHandler := storage2.NewStorageHandlerV1(storageSvc, discardLogger)
	return chi.NewRouter(discardLogger, uploadHandler, storageHandler, adminCfg, "")
}

func TestStatsV1_Success(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("GetStorageStats", mock.Anything).Return(&domain.StorageStats{
		Disk:   domain.DiskStats{Total: 1000, Used: 450, Available: 550, PercentUsed: 45},
		Repo:   domain.RepoStats{RepoSize: 300, StorageMax: 900, NumObjects: 12},
		Health: domain.HealthGreen,
	}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/stats", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool                `json:"success"`
		Data    domain.StorageStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, domain.HealthGreen, resp.Data.Health)
	mockStorageService.AssertExpectations(t)
}

func TestStatsV1_WrongCredentials(t *testing.T) {

	//Arrange
	h := newTestRouter(storageservice.NewMockStorageService(), testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/stats", nil)
	req.SetBasicAuth("admin", "wrong")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="storage"`, w.Header().Get("WWW-Authenticate"))
}

func TestStatsV1_MissingCredentials(t *testing.T) {

	//Arrange
	h := newTestRouter(storageservice.NewMockStorageService(), testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/stats", nil)

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="storage"`, w.Header().Get("WWW-Authenticate"))
}

func TestStatsV1_PasswordNotConfigured(t *testing.T) {

	//Arrange: no password configured is a 500, never a bypass
	h := newTestRouter(storageservice.NewMockStorageService(), config.StorageAdminConfig{Username: "admin"})
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/stats", nil)
	req.SetBasicAuth("admin", "")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
}

func TestPinnedV1_Success(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("ListPinnedFiles", mock.Anything).Return([]domain.PinEntry{
		{CID: "QmA", Size: 100, AgeHours: 48, Eligible: true},
		{CID: "QmB", Size: 0, AgeHours: 1, Eligible: false},
	}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/pinned", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool              `json:"success"`
		Data    []domain.PinEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].Eligible)
	mockStorageService.AssertExpectations(t)
}

func TestPinnedV1_UpstreamDown(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("ListPinnedFiles", mock.Anything).Return(nil, domain.ErrUpstreamUnavailable)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/pinned", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusBadGateway, w.Code)
}

func TestUnpinV1_PartialFailure(t *testing.T) {

	//Arrange: a partial failure is still a 200 with a mixed result
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("UnpinFiles", mock.Anything, []string{"QmA", "QmB"}, false).
		Return(&domain.UnpinResult{
			Success: []string{"QmA"},
			Failed:  []domain.UnpinFailure{{CID: "QmB", Error: "pin is younger than the minimum age"}},
		}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	body, err := json.Marshal(storage2.V1UnpinRequest{CIDs: []string{"QmA", "QmB"}})
	require.NoError(t, err)
	req := httptest.NewRequest(httpgo.MethodPost, "/api/storage/unpin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		Data    domain.UnpinResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"QmA"}, resp.Data.Success)
	require.Len(t, resp.Data.Failed, 1)
	assert.Equal(t, "QmB", resp.Data.Failed[0].CID)
	mockStorageService.AssertExpectations(t)
}

func TestUnpinV1_EmptyCids(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("UnpinFiles", mock.Anything, mock.Anything, false).
		Return(nil, domain.ErrValidation)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodPost, "/api/storage/unpin", bytes.NewReader([]byte(`{"cids":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusBadRequest, w.Code)
}

func TestRunGCV1_Success(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("RunGarbageCollection", mock.Anything).Return(&domain.GCResult{
		RepoSizeBefore: 1000,
		RepoSizeAfter:  400,
		SpaceFreed:     600,
	}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodPost, "/api/storage/gc", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool            `json:"success"`
		Data    domain.GCResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(600), resp.Data.SpaceFreed)
	mockStorageService.AssertExpectations(t)
}

func TestRunGCV1_Failed(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("RunGarbageCollection", mock.Anything).Return(nil, domain.ErrGCFailed)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodPost, "/api/storage/gc", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
}

func TestHealthV1_RedIsUnhealthy(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("GetStorageStats", mock.Anything).Return(&domain.StorageStats{
		Disk:   domain.DiskStats{PercentUsed: 92},
		Health: domain.HealthRed,
	}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/health", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool                             `json:"success"`
		Data    storage2.V1StorageHealthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Healthy)
	assert.Equal(t, domain.HealthRed, resp.Data.Level)
}

func TestUnpinnedV1_Success(t *testing.T) {

	//Arrange
	mockStorageService := storageservice.NewMockStorageService()
	mockStorageService.On("EstimateReclaimableSpace", mock.Anything).Return(&domain.ReclaimEstimate{
		EstimatedBytes: 1234,
		Approximate:    true,
	}, nil)

	h := newTestRouter(mockStorageService, testAdminCfg)
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodGet, "/api/storage/unpinned", nil)
	req.SetBasicAuth("admin", "secret")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusOK, w.Code)
	var resp struct {
		Success bool                   `json:"success"`
		Data    domain.ReclaimEstimate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1234), resp.Data.EstimatedBytes)
	assert.True(t, resp.Data.Approximate)
}
