package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/hashicorp/go-retryablehttp"
)

// RequestError is a failure envelope returned by the upload API, surfaced as
// a Go error.
type RequestError struct {
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client is the control-plane HTTP client for the upload API. Connection
// failures on these calls are retried at the transport level; the byte
// transfers themselves go through the transfer package and are not.
type Client struct {
	base string
	http *retryablehttp.Client
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string) *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.Logger = nil
	c.HTTPClient.Timeout = 30 * time.Second

	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: c,
	}
}

// PresignUploads requests presigned single-shot URLs for a batch of files.
func (c *Client) PresignUploads(ctx context.Context, files []api.FileUpload) ([]api.PresignedURL, error) {
	var out api.PresignedURLsResponse
	err := c.call(ctx, http.MethodPost, "/api/upload/presigned-urls", api.PresignedURLsRequest{Files: files}, &out)
	if err != nil {
		return nil, err
	}
	return out.Uploads, nil
}

// InitiateMultipart creates an upload session for a large file.
func (c *Client) InitiateMultipart(ctx context.Context, filename, contentType string, size int64) (*api.InitiateResponse, error) {
	var out api.InitiateResponse
	err := c.call(ctx, http.MethodPost, "/api/upload/multipart/initiate", api.InitiateRequest{
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SignPart requests a fresh presigned URL for one numbered part.
func (c *Client) SignPart(ctx context.Context, uploadID, key string, partNumber int) (*api.PartResponse, error) {
	var out api.PartResponse
	err := c.call(ctx, http.MethodPost, "/api/upload/multipart/presigned-part", api.PartRequest{
		UploadID:   uploadID,
		Key:        key,
		PartNumber: partNumber,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteMultipart finalizes the session with the full ordered part list.
func (c *Client) CompleteMultipart(ctx context.Context, uploadID, key string, parts []api.Part) (*api.CompleteResponse, error) {
	var out api.CompleteResponse
	err := c.call(ctx, http.MethodPost, "/api/upload/multipart/complete", api.CompleteRequest{
		UploadID: uploadID,
		Key:      key,
		Parts:    parts,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AbortMultipart discards the session.
func (c *Client) AbortMultipart(ctx context.Context, uploadID, key string) error {
	return c.call(ctx, http.MethodDelete, "/api/upload/multipart/abort", api.AbortRequest{
		UploadID: uploadID,
		Key:      key,
	}, nil)
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	var envelope api.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			first := envelope.Errors[0]
			return &RequestError{Code: first.Code, Message: first.Message}
		}
		return &RequestError{Code: "UNKNOWN", Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data from %s: %w", path, err)
		}
	}
	return nil
}
