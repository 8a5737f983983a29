package upload_test

import (
	"context"
	"testing"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/adapters/storage"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_PresignUpload_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStorage := storage.NewMockStorage()
	service := upload.NewUploadService(mockStorage, defaultCfg)

	expiresAt := time.Now().Add(5 * time.Minute)
	mockStorage.On("PresignUpload", ctx, "uploads/1/report.pdf", "application/pdf").
		Return("https://store/upload", &expiresAt, nil)

	// Act
	presigned, err := service.PresignUpload(ctx, "uploads/1/report.pdf", "application/pdf")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "uploads/1/report.pdf", presigned.Key)
	assert.Equal(t, "https://store/upload", presigned.URL)
	assert.Equal(t, expiresAt, presigned.ExpiresAt)
	mockStorage.AssertExpectations(t)
}

func TestUploadService_PresignUpload_UnsupportedContentType(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStorage := storage.NewMockStorage()
	service := upload.NewUploadService(mockStorage, defaultCfg)

	// Act
	presigned, err := service.PresignUpload(ctx, "uploads/1/cat.png", "image/png")

	// Assert
	assert.ErrorIs(t, err, domain.ErrUnsupportedContentType)
	require.Nil(t, presigned)
	mockStorage.AssertNotCalled(t, "PresignUpload")
}
