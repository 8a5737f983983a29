package port

import (
	"context"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// ObjectStorage is an interface to define object-store interactions
type ObjectStorage interface {
	PresignUpload(ctx context.Context, fileKey string, contentType string) (string, *time.Time, error)
	InitMultipartUpload(ctx context.Context, fileKey string, contentType string) (string, error)
	PresignPart(ctx context.Context, fileKey string, uploadID string, partNumber int) (string, *time.Time, error)
	CompleteMultipartUpload(ctx context.Context, fileKey string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error)
	AbortMultipartUpload(ctx context.Context, fileKey string, uploadID string) error
}
