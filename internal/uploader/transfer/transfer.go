// Package transfer performs the actual byte PUTs against presigned URLs.
// Transfers are fail-fast: no transport-level retry, a non-2xx status or
// network error surfaces immediately.
package transfer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client uploads bytes to presigned URLs.
type Client struct {
	http *http.Client
}

// New returns a Client backed by the default transport.
func New() *Client {
	return &Client{http: &http.Client{}}
}

// PutPart uploads one chunk to a presigned part URL and returns the part
// identifier (ETag) the store assigned, with surrounding quotes stripped.
func (c *Client) PutPart(ctx context.Context, url string, body io.Reader, size int64) (string, error) {
	resp, err := c.do(ctx, url, body, size)
	if err != nil {
		return "", err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to upload chunk: %d", resp.StatusCode)
	}

	etag := strings.Trim(resp.Header.Get("ETag"), "\"")
	if etag == "" {
		return "", fmt.Errorf("no ETag received from store")
	}
	return etag, nil
}

// PutObject uploads a whole object to a presigned URL, reporting byte-level
// progress as a monotonically non-decreasing percentage in [0,100].
func (c *Client) PutObject(ctx context.Context, url string, body io.Reader, size int64, onProgress func(percent int)) error {
	if onProgress != nil {
		body = &progressReader{r: body, total: size, fn: onProgress}
	}

	resp, err := c.do(ctx, url, body, size)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to upload file: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, url string, body io.Reader, size int64) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.ContentLength = size

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	return resp, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// progressReader reports read progress as an integer percentage. Reported
// values never decrease.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		percent := int(p.read * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.last {
			p.last = percent
			p.fn(percent)
		}
	}
	return n, err
}
