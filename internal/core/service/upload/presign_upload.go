package upload

import (
	"context"
	"fmt"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// PresignUpload generates a time-limited URL for a single-shot object PUT.
func (s *uploadService) PresignUpload(ctx context.Context, key string, contentType string) (*domain.PresignedUpload, error) {

	if contentType != s.uploadCfg.AcceptedContentType {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, contentType)
	}

	url, expiresAt, err := s.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("could not generate presigned upload URL: %w", err)
	}

	return &domain.PresignedUpload{
		Key:       key,
		URL:       url,
		ExpiresAt: *expiresAt,
	}, nil
}
