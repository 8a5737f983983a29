package port

import (
	"context"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// UploadService is an interface to define the upload session service
type UploadService interface {
	PresignUpload(ctx context.Context, key string, contentType string) (*domain.PresignedUpload, error)
	Initiate(ctx context.Context, key string, contentType string) (*domain.MultipartInit, error)
	SignPart(ctx context.Context, key string, uploadID string, partNumber int) (*domain.PartURL, error)
	Complete(ctx context.Context, key string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error)
	Abort(ctx context.Context, key string, uploadID string) error
}
