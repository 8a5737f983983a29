package upload_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteMultipartV1(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		// Arrange
		mockService := upload.NewMockUploadService()
		expectedParts := []domain.CompletedPart{
			{PartNumber: 1, ETag: "etag-1"},
			{PartNumber: 2, ETag: "etag-2"},
			{PartNumber: 3, ETag: "etag-3"},
		}
		mockService.On("Complete", mock.Anything, "uploads/1/big.pdf", "upload-id-1", expectedParts).
			Return(&domain.CompletedUpload{Location: "https://store/bucket/uploads/1/big.pdf", ETag: "final-etag"}, nil)
		h := newTestRouter(mockService)

		// Act
		w := postJSON(t, h, "/api/upload/multipart/complete", api.CompleteRequest{
			UploadID: "upload-id-1",
			Key:      "uploads/1/big.pdf",
			Parts: []api.Part{
				{PartNumber: 1, ETag: "etag-1"},
				{PartNumber: 2, ETag: "etag-2"},
				{PartNumber: 3, ETag: "etag-3"},
			},
		})

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.True(t, envelope.Success)

		var resp api.CompleteResponse
		require.NoError(t, json.Unmarshal(envelope.Data, &resp))
		assert.Equal(t, "https://store/bucket/uploads/1/big.pdf", resp.Location)
		assert.Equal(t, "final-etag", resp.ETag)
		mockService.AssertExpectations(t)
	})

	t.Run("error - gap in part sequence rejected before service call", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/complete", api.CompleteRequest{
			UploadID: "upload-id-1",
			Key:      "uploads/1/big.pdf",
			Parts: []api.Part{
				{PartNumber: 1, ETag: "etag-1"},
				{PartNumber: 3, ETag: "etag-3"},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INVALID_PART_SEQUENCE", envelope.Errors[0].Code)
		assert.Equal(t, "Part numbers must be sequential starting from 1", envelope.Errors[0].Message)
		mockService.AssertNotCalled(t, "Complete")
	})

	t.Run("error - no parts", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/complete", api.CompleteRequest{
			UploadID: "upload-id-1",
			Key:      "uploads/1/big.pdf",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "NO_PARTS", envelope.Errors[0].Code)
		mockService.AssertNotCalled(t, "Complete")
	})

	t.Run("error - missing etag and out-of-range part number", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/complete", api.CompleteRequest{
			UploadID: "upload-id-1",
			Key:      "uploads/1/big.pdf",
			Parts: []api.Part{
				{PartNumber: 0, ETag: "etag-1"},
				{PartNumber: 2},
			},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 2)
		assert.Equal(t, "parts[0].partNumber", envelope.Errors[0].Field)
		assert.Equal(t, "parts[1].etag", envelope.Errors[1].Field)
		mockService.AssertNotCalled(t, "Complete")
	})

	t.Run("error - service failure maps to INTERNAL_ERROR", func(t *testing.T) {
		mockService := upload.NewMockUploadService()
		mockService.On("Complete", mock.Anything, "uploads/1/big.pdf", "upload-id-1", mock.Anything).
			Return((*domain.CompletedUpload)(nil), domain.ErrCompleteFailed)
		h := newTestRouter(mockService)

		w := postJSON(t, h, "/api/upload/multipart/complete", api.CompleteRequest{
			UploadID: "upload-id-1",
			Key:      "uploads/1/big.pdf",
			Parts:    []api.Part{{PartNumber: 1, ETag: "etag-1"}},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		envelope := decodeEnvelope(t, w)
		require.Len(t, envelope.Errors, 1)
		assert.Equal(t, "INTERNAL_ERROR", envelope.Errors[0].Code)
		assert.Equal(t, "Failed to complete multipart upload", envelope.Errors[0].Message)
	})
}
