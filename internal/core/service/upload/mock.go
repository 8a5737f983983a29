package upload

import (
	"context"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
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

func (m *MockUploadService) PresignUpload(ctx context.Context, key string, contentType string) (*domain.PresignedUpload, error) {
	args := m.Called(ctx, key, contentType)
	return args.Get(0).(*domain.PresignedUpload), args.Error(1)
}

func (m *MockUploadService) Initiate(ctx context.Context, key string, contentType string) (*domain.MultipartInit, error) {
	args := m.Called(ctx, key, contentType)
	return args.Get(0).(*domain.MultipartInit), args.Error(1)
}

func (m *MockUploadService) SignPart(ctx context.Context, key string, uploadID string, partNumber int) (*domain.PartURL, error) {
	args := m.Called(ctx, key, uploadID, partNumber)
	return args.Get(0).(*domain.PartURL), args.Error(1)
}

func (m *MockUploadService) Complete(ctx context.Context, key string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error) {
	args := m.Called(ctx, key, uploadID, parts)
	return args.Get(0).(*domain.CompletedUpload), args.Error(1)
}

func (m *MockUploadService) Abort(ctx context.Context, key string, uploadID string) error {
	args := m.Called(ctx, key, uploadID)
	return args.Error(0)
}
