package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi"
	upload2 "github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
	statusservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/status"
	uploadservice "github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/upload"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(uploadSvc port.UploadService, statusSvc port.StatusService) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := upload2.NewUploadHandlerV1(uploadSvc, statusSvc, discardLogger)
	return chi.NewRouter(discardLogger, handler, nil, config.StorageAdminConfig{}, "")
}

func TestFinalizeUploadV1_Success(t *testing.T) {

	//Arrange
	uploadID := uuid.New()
	videoID := uuid.New()
	expectedMetadata := domain.VideoMetadata{
		Title:       "T",
		Description: "D",
		Tags:        []string{"a", "b"},
	}

	mockUploadService := uploadservice.NewMockUploadService()
	mockUploadService.On("Finalize", mock.Anything, uploadID, expectedMetadata).
		Return(&port.FinalizeResult{VideoID: videoID, Permlink: "abc12345"}, nil)

	h := newTestRouter(mockUploadService, statusservice.NewMockStatusService())
	w := httptest.NewRecorder()

	requestBody := upload2.V1FinalizeUploadRequest{
		UploadID:    uploadID,
		Title:       "T",
		Description: "D",
		Tags:        []string{"a", "b"},
	}
	jsonBody, err := json.Marshal(requestBody)
	require.NoError(t, err)
	req := httptest.NewRequest(httpgo.MethodPost, "/api/upload/finalize", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "alice")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusCreated, w.Code)
	var resp struct {
		Success bool                             `json:"success"`
		Data    upload2.V1FinalizeUploadResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, videoID, resp.Data.VideoID)
	assert.Equal(t, "abc12345", resp.Data.Permlink)
	mockUploadService.AssertExpectations(t)
}

func TestFinalizeUploadV1_CommunityObject(t *testing.T) {

	//Arrange
	uploadID := uuid.New()
	expectedMetadata := domain.VideoMetadata{
		Title:     "T",
		Community: "hive-181335",
	}

	mockUploadService := uploadservice.NewMockUploadService()
	mockUploadService.On("Finalize", mock.Anything, uploadID, expectedMetadata).
		Return(&port.FinalizeResult{VideoID: uuid.New(), Permlink: "xyz"}, nil)

	h := newTestRouter(mockUploadService, statusservice.NewMockStatusService())
	w := httptest.NewRecorder()

	body := []byte(`{"upload_id":"` + uploadID.String() + `","title":"T","community":{"name":"hive-181335"}}`)
	req := httptest.NewRequest(httpgo.MethodPost, "/api/upload/finalize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "alice")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusCreated, w.Code)
	mockUploadService.AssertExpectations(t)
}

func TestFinalizeUploadV1_Error(t *testing.T) {

	uploadID := uuid.New()

	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{"not ready is retryable conflict", domain.ErrNotReady, httpgo.StatusConflict},
		{"already finalized", domain.ErrAlreadyFinalized, httpgo.StatusConflict},
		{"session not found", domain.ErrSessionNotFound, httpgo.StatusNotFound},
		{"session expired", domain.ErrSessionExpired, httpgo.StatusGone},
		{"validation", domain.ErrValidation, httpgo.StatusBadRequest},
		{"internal", assert.AnError, httpgo.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//Arrange
			mockUploadService := uploadservice.NewMockUploadService()
			mockUploadService.On("Finalize", mock.Anything, uploadID, mock.Anything).
				Return(nil, tt.serviceErr)

			h := newTestRouter(mockUploadService, statusservice.NewMockStatusService())
			w := httptest.NewRecorder()

			body := []byte(`{"upload_id":"` + uploadID.String() + `","title":"T"}`)
			req := httptest.NewRequest(httpgo.MethodPost, "/api/upload/finalize", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User", "alice")

			//Act
			h.ServeHTTP(w, req)

			//Assert
			assert.Equal(t, tt.expectedCode, w.Code)
			var resp struct {
				Success bool `json:"success"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
		})
	}
}

func TestFinalizeUploadV1_MissingUserHeader(t *testing.T) {

	//Arrange
	h := newTestRouter(uploadservice.NewMockUploadService(), statusservice.NewMockStatusService())
	w := httptest.NewRecorder()

	req := httptest.NewRequest(httpgo.MethodPost, "/api/upload/finalize", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
}

func TestFinalizeUploadV1_BadCommunity(t *testing.T) {

	//Arrange
	h := newTestRouter(uploadservice.NewMockUploadService(), statusservice.NewMockStatusService())
	w := httptest.NewRecorder()

	body := []byte(`{"upload_id":"` + uuid.NewString() + `","title":"T","community":{"id":42}}`)
	req := httptest.NewRequest(httpgo.MethodPost, "/api/upload/finalize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", "alice")

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, httpgo.StatusBadRequest, w.Code)
}
