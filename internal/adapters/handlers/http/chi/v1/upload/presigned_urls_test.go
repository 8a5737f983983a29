package upload_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	router "github.com/aodysseos/ai-dashboard/internal/adapters/handlers/http/chi"
	uploadhandler "github.com/aodysseos/ai-dashboard/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/config"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUploadCfg = config.UploadConfig{
	AcceptedContentType: "application/pdf",
	ChunkSize:           5 * 1024 * 1024,
	SingleUploadMaxSize: 10 * 1024 * 1024,
	MaxFiles:            200,
	Concurrency:         5,
}

func newTestRouter(service *upload.MockUploadService) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := uploadhandler.NewUploadHandlerV1(service, testUploadCfg, discardLogger)
	return router.NewRouter(discardLogger, handler, "")
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var envelope api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	return envelope
}

func TestPresignedURLsV1(t *testing.T) {

	t.Run("success - single file", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		expiresAt := time.Now().Add(5 * time.Minute).UTC()
		mockService.On("PresignUpload", mock.Anything, mock.Anything, "application/pdf").
			Return(&domain.PresignedUpload{Key: "uploads/1/report.pdf", URL: "https://store/upload", ExpiresAt: expiresAt}, nil)

		h := newTestRouter(mockService)

		// Act
		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{
			Files: []api.FileUpload{
				{Filename: "report.pdf", Size: 2097152, ContentType: "application/pdf"},
			},
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)

		var resp api.PresignedURLsResponse
		require.NoError(t, json.Unmarshal(envelope.Data, &resp))
		require.Len(t, resp.Uploads, 1)
		assert.Equal(t, "uploads/1/report.pdf", resp.Uploads[0].Key)
		assert.Equal(t, "https://store/upload", resp.Uploads[0].UploadURL)
		mockService.AssertExpectations(t)
	})

	t.Run("error - no files", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.False(t, envelope.Success)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "NO_FILES", envelope.Errors[0].Code)
	})

	t.Run("error - batch of 201 files rejected without service calls", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		files := make([]api.FileUpload, 201)
		for i := range files {
			files[i] = api.FileUpload{Filename: "report.pdf", Size: 1024, ContentType: "application/pdf"}
		}

		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{Files: files})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "TOO_MANY_FILES", envelope.Errors[0].Code)
		assert.Equal(t, "Maximum 200 files allowed per request", envelope.Errors[0].Message)
		mockService.AssertNotCalled(t, "PresignUpload")
	})

	t.Run("error - png rejected before any presign call", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{
			Files: []api.FileUpload{
				{Filename: "image.png", Size: 1024, ContentType: "image/png"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INVALID_FILE_TYPE", envelope.Errors[0].Code)
		assert.Equal(t, "Only PDF files are allowed", envelope.Errors[0].Message)
		assert.Equal(t, "files[0].contentType", envelope.Errors[0].Field)
		mockService.AssertNotCalled(t, "PresignUpload")
	})

	t.Run("error - oversize and empty filename accumulate field errors", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{
			Files: []api.FileUpload{
				{Filename: "big.pdf", Size: 11 * 1024 * 1024, ContentType: "application/pdf"},
				{Filename: "   ", Size: 1024, ContentType: "application/pdf"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 2)
		assert.Equal(t, "FILE_TOO_LARGE", envelope.Errors[0].Code)
		assert.Equal(t, "files[0].size", envelope.Errors[0].Field)
		assert.Equal(t, "MISSING_FILENAME", envelope.Errors[1].Code)
		assert.Equal(t, "files[1].filename", envelope.Errors[1].Field)
	})

	t.Run("error - service failure maps to INTERNAL_ERROR", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		mockService.On("PresignUpload", mock.Anything, mock.Anything, "application/pdf").
			Return((*domain.PresignedUpload)(nil), assert.AnError)
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/presigned-urls", api.PresignedURLsRequest{
			Files: []api.FileUpload{
				{Filename: "report.pdf", Size: 1024, ContentType: "application/pdf"},
			},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INTERNAL_ERROR", envelope.Errors[0].Code)
	})
}
