package storage

import (
	"context"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) PresignUpload(ctx context.Context, fileKey string, contentType string) (string, *time.Time, error) {
	args := m.Called(ctx, fileKey, contentType)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockStorage) InitMultipartUpload(ctx context.Context, fileKey string, contentType string) (string, error) {
	args := m.Called(ctx, fileKey, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) PresignPart(ctx context.Context, fileKey string, uploadID string, partNumber int) (string, *time.Time, error) {
	args := m.Called(ctx, fileKey, uploadID, partNumber)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockStorage) CompleteMultipartUpload(ctx context.Context, fileKey string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error) {
	args := m.Called(ctx, fileKey, uploadID, parts)
	return args.Get(0).(*domain.CompletedUpload), args.Error(1)
}

func (m *MockStorage) AbortMultipartUpload(ctx context.Context, fileKey string, uploadID string) error {
	args := m.Called(ctx, fileKey, uploadID)
	return args.Error(0)
}
