package domain

import "time"

// Part number bounds imposed by the multipart upload protocol.
const (
	MinPartNumber = 1
	MaxPartNumber = 10000
)

// CompletedPart is one uploaded part as reported back by the client. The ETag
// is the opaque identifier the store returned for the part's byte transfer
// and must be supplied verbatim at completion.
type CompletedPart struct {
	PartNumber int
	ETag       string
}

// PresignedUpload is a time-limited URL for a single-shot object PUT.
type PresignedUpload struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// MultipartInit identifies a freshly created upload session.
type MultipartInit struct {
	UploadID string
	Key      string
}

// PartURL is a time-limited URL for uploading one numbered part.
type PartURL struct {
	PartNumber int
	URL        string
	ExpiresAt  time.Time
}

// CompletedUpload is the store's reply after merging all parts.
type CompletedUpload struct {
	Location string
	ETag     string
}
