// Package api defines the wire contract shared by the upload HTTP handlers
// and the uploader client.
package api

import (
	"encoding/json"
	"time"
)

// Error is one entry of a failure envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Response is the uniform envelope carried by every endpoint. Data is left
// raw so the client can decode it into the endpoint-specific type.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []Error         `json:"errors,omitempty"`
}

// FileUpload describes one file in a presigned-URL batch request.
type FileUpload struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type PresignedURLsRequest struct {
	Files []FileUpload `json:"files"`
}

type PresignedURL struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PresignedURLsResponse struct {
	Uploads []PresignedURL `json:"uploads"`
}

type InitiateRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type InitiateResponse struct {
	UploadID string `json:"uploadId"`
	Key      string `json:"key"`
}

type PartRequest struct {
	UploadID   string `json:"uploadId"`
	Key        string `json:"key"`
	PartNumber int    `json:"partNumber"`
}

type PartResponse struct {
	PartNumber int       `json:"partNumber"`
	UploadURL  string    `json:"uploadUrl"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// Part is one completed part reported back at completion time.
type Part struct {
	PartNumber int    `json:"partNumber"`
	ETag       string `json:"etag"`
}

type CompleteRequest struct {
	UploadID string `json:"uploadId"`
	Key      string `json:"key"`
	Parts    []Part `json:"parts"`
}

type CompleteResponse struct {
	Location string `json:"location"`
	ETag     string `json:"etag"`
}

type AbortRequest struct {
	UploadID string `json:"uploadId"`
	Key      string `json:"key"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
