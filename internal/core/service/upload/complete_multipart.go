package upload

import (
	"context"
	"fmt"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// Complete merges all uploaded parts into one object. Parts must be supplied
// pre-sorted by part number and contiguous from 1 (caller-enforced via
// ValidatePartSequence). Any part uploaded but omitted from the list is
// abandoned by the store.
func (s *uploadService) Complete(ctx context.Context, key string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error) {

	completed, err := s.storage.CompleteMultipartUpload(ctx, key, uploadID, parts)
	if err != nil {
		return nil, fmt.Errorf("could not complete multipart upload: %w", err)
	}
	if completed == nil || completed.Location == "" || completed.ETag == "" {
		return nil, domain.ErrCompleteFailed
	}

	return completed, nil
}
