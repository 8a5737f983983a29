package upload

import (
	"context"
	"fmt"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// SignPart returns a fresh short-lived URL for uploading one numbered part.
// It is stateless with respect to the session and safe to call repeatedly;
// the part number range is caller-enforced.
func (s *uploadService) SignPart(ctx context.Context, key string, uploadID string, partNumber int) (*domain.PartURL, error) {

	url, expiresAt, err := s.storage.PresignPart(ctx, key, uploadID, partNumber)
	if err != nil {
		return nil, fmt.Errorf("could not generate presigned part URL: %w", err)
	}

	return &domain.PartURL{
		PartNumber: partNumber,
		URL:        url,
		ExpiresAt:  *expiresAt,
	}, nil
}
