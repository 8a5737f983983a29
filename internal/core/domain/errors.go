package domain

import "errors"

// ErrUnsupportedContentType is an error thrown when the content type is not the accepted one
var ErrUnsupportedContentType = errors.New("unsupported content type")

// ErrSessionCreateFailed is an error thrown when the store does not return an upload session identifier
var ErrSessionCreateFailed = errors.New("failed to create upload session")

// ErrCompleteFailed is an error thrown when the store omits location or final identifier on completion
var ErrCompleteFailed = errors.New("failed to complete multipart upload")

// ErrAbortFailed is an error thrown when aborting an upload session fails
var ErrAbortFailed = errors.New("failed to abort multipart upload")

// ErrNoParts is an error thrown when a completion carries no parts
var ErrNoParts = errors.New("no parts supplied")

// ErrDuplicatePart is an error thrown when part numbers are duplicated
var ErrDuplicatePart = errors.New("duplicate part")

// ErrInvalidPartSequence is an error thrown when part numbers are not contiguous from 1
var ErrInvalidPartSequence = errors.New("part numbers must be sequential starting from 1")

// ErrPartNumberOutOfRange is an error thrown when a part number is outside [1,10000]
var ErrPartNumberOutOfRange = errors.New("part number out of range")
