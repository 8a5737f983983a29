// Package chunk holds the pure chunking and validation helpers used by the
// upload orchestrator.
package chunk

import (
	"errors"
	"fmt"
	"strings"
)

// Range is one contiguous byte range of a file.
type Range struct {
	Offset int64
	Length int64
}

// Split produces the ordered byte ranges covering [0,size) with no gaps or
// overlaps. The last range may be shorter than chunkSize. Deterministic and
// restartable: a pure function of its inputs.
func Split(size, chunkSize int64) []Range {
	if size <= 0 || chunkSize <= 0 {
		return nil
	}

	ranges := make([]Range, 0, Count(size, chunkSize))
	for start := int64(0); start < size; start += chunkSize {
		length := chunkSize
		if start+length > size {
			length = size - start
		}
		ranges = append(ranges, Range{Offset: start, Length: length})
	}
	return ranges
}

// Count returns ceil(size/partSize).
func Count(size, partSize int64) int {
	if size <= 0 || partSize <= 0 {
		return 0
	}
	return int((size + partSize - 1) / partSize)
}

// ValidateFile checks content type, then size, then filename; the first
// failing check wins. A nil return means the file is accepted.
func ValidateFile(name, contentType, acceptedType string, size, maxSize int64) error {
	if contentType != acceptedType {
		return errors.New("Only PDF files are allowed")
	}

	if size > maxSize {
		return fmt.Errorf("File size must not exceed %dMB", maxSize/(1024*1024))
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("File name is required")
	}

	return nil
}
