package upload

import (
	"context"
	"fmt"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// Initiate creates a new multipart upload session in the object store.
func (s *uploadService) Initiate(ctx context.Context, key string, contentType string) (*domain.MultipartInit, error) {

	if contentType != s.uploadCfg.AcceptedContentType {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, contentType)
	}

	uploadID, err := s.storage.InitMultipartUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("could not initiate multipart upload: %w", err)
	}
	if uploadID == "" {
		return nil, domain.ErrSessionCreateFailed
	}

	return &domain.MultipartInit{UploadID: uploadID, Key: key}, nil
}
