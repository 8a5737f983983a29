package upload_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPresignedPartV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		expiresAt := time.Now().Add(5 * time.Minute).UTC()
		mockService.On("SignPart", mock.Anything, "uploads/1/big.pdf", "upload-id-1", 3).
			Return(&domain.PartURL{PartNumber: 3, URL: "https://store/part/3", ExpiresAt: expiresAt}, nil)
		h := newTestRouter(mockService)

		// Act
		w := postJSON(t, h, "/api/upload/multipart/presigned-part", api.PartRequest{
			UploadID:   "upload-id-1",
			Key:        "uploads/1/big.pdf",
			PartNumber: 3,
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)

		var resp api.PartResponse
		require.NoError(t, json.Unmarshal(envelope.Data, &resp))
		assert.Equal(t, 3, resp.PartNumber)
		assert.Equal(t, "https://store/part/3", resp.UploadURL)
		mockService.AssertExpectations(t)
	})

	t.Run("error - part number zero", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/presigned-part", api.PartRequest{
			UploadID:   "upload-id-1",
			Key:        "uploads/1/big.pdf",
			PartNumber: 0,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INVALID_PART_NUMBER", envelope.Errors[0].Code)
		assert.Equal(t, "Part number must be between 1 and 10000", envelope.Errors[0].Message)
		mockService.AssertNotCalled(t, "SignPart")
	})

	t.Run("error - part number above 10000", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/presigned-part", api.PartRequest{
			UploadID:   "upload-id-1",
			Key:        "uploads/1/big.pdf",
			PartNumber: 10001,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INVALID_PART_NUMBER", envelope.Errors[0].Code)
	})

	t.Run("error - missing uploadId and key", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/presigned-part", api.PartRequest{PartNumber: 1})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 2)
		assert.Equal(t, "uploadId", envelope.Errors[0].Field)
		assert.Equal(t, "key", envelope.Errors[1].Field)
	})

	t.Run("error - service failure maps to INTERNAL_ERROR", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		mockService.On("SignPart", mock.Anything, "uploads/1/big.pdf", "upload-id-1", 1).
			Return((*domain.PartURL)(nil), assert.AnError)
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/presigned-part", api.PartRequest{
			UploadID:   "upload-id-1",
			Key:        "uploads/1/big.pdf",
			PartNumber: 1,
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INTERNAL_ERROR", envelope.Errors[0].Code)
	})
}
