package upload

import (
	"context"
	"fmt"

	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// Abort discards the upload session and releases any uploaded-but-unmerged
// part data. Best-effort; the caller should treat the session as unusable
// regardless of the outcome.
func (s *uploadService) Abort(ctx context.Context, key string, uploadID string) error {

	if err := s.storage.AbortMultipartUpload(ctx, key, uploadID); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAbortFailed, err)
	}
	return nil
}
