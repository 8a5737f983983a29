package upload

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/config"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/port"
)

type uploadService struct {
	storage   port.ObjectStorage
	uploadCfg config.UploadConfig
}

// NewUploadService creates a new upload session service
func NewUploadService(storage port.ObjectStorage, cfg config.UploadConfig) port.UploadService {
	return &uploadService{storage: storage, uploadCfg: cfg}
}

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// GenerateStorageKey derives a deterministic storage key from the current
// timestamp and the sanitized filename. Every character outside
// [A-Za-z0-9.-] is replaced with an underscore.
func GenerateStorageKey(filename string) string {
	sanitized := keySanitizer.ReplaceAllString(filename, "_")
	return fmt.Sprintf("uploads/%d/%s", time.Now().UnixMilli(), sanitized)
}

// ValidatePartSequence checks that the supplied parts, once sorted by part
// number, are numbered contiguously from 1 with no gaps or duplicates. It
// must be called before any store interaction.
func ValidatePartSequence(parts []domain.CompletedPart) error {
	if len(parts) == 0 {
		return domain.ErrNoParts
	}

	sorted := make([]domain.CompletedPart, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PartNumber < sorted[j].PartNumber
	})

	for i, part := range sorted {
		if i > 0 && part.PartNumber == sorted[i-1].PartNumber {
			return domain.ErrDuplicatePart
		}
		if part.PartNumber != i+1 {
			return domain.ErrInvalidPartSequence
		}
	}
	return nil
}
