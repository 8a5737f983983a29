package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aodysseos/ai-dashboard/internal/config"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/encrypt"
)

// Adapter is an adapter for minio. It holds two client handles: one for
// direct store operations against the operational endpoint, and one for
// signing URLs. When cfg.PublicEndpoint is set, the signing handle is built
// against it so the signature's embedded host matches what the caller of the
// presigned URL will actually send; otherwise a single handle serves both.
type Adapter struct {
	client     *minio.Client
	core       *minio.Core
	signClient *minio.Client
	signCore   *minio.Core
	sse        encrypt.ServerSide
	config     config.MinioConfig
	logger     *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	creds := credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  creds,
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	signClient := client
	if cfg.PublicEndpoint != "" && cfg.PublicEndpoint != cfg.Endpoint {
		signClient, err = minio.New(cfg.PublicEndpoint, &minio.Options{
			Creds:  creds,
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio signing client: %w", err)
		}
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	var sse encrypt.ServerSide
	if cfg.ServerSideEncryption {
		sse = encrypt.NewSSE()
	}

	core := minio.Core{Client: client}
	signCore := minio.Core{Client: signClient}
	return &Adapter{
		client:     client,
		core:       &core,
		signClient: signClient,
		signCore:   &signCore,
		sse:        sse,
		config:     cfg,
		logger:     logger,
	}, nil
}

// PresignUpload generates a presigned URL for a single-shot object PUT
func (a *Adapter) PresignUpload(ctx context.Context, fileKey string, contentType string) (string, *time.Time, error) {
	reqHeaders := make(http.Header)
	reqHeaders.Set("Content-Type", contentType)

	presignedURL, err := a.signClient.PresignHeader(ctx, http.MethodPut, a.config.BucketName, fileKey, a.config.PresignTTL, nil, reqHeaders)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PresignTTL)
	return presignedURL.String(), &expiresAt, nil
}

// InitMultipartUpload inits a multipart upload
func (a *Adapter) InitMultipartUpload(ctx context.Context, fileKey string, contentType string) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}
	if a.sse != nil {
		opts.ServerSideEncryption = a.sse
	}

	uploadID, err := a.core.NewMultipartUpload(ctx, a.config.BucketName, fileKey, opts)
	if err != nil {
		return "", fmt.Errorf("failed to init multipart upload: %w", err)
	}
	return uploadID, nil
}

// PresignPart generates a presigned URL for one numbered part
func (a *Adapter) PresignPart(ctx context.Context, fileKey string, uploadID string, partNumber int) (string, *time.Time, error) {
	reqParams := make(url.Values)
	reqParams.Set("partNumber", fmt.Sprintf("%d", partNumber))
	reqParams.Set("uploadId", uploadID)

	presignedURL, err := a.signCore.PresignHeader(ctx, http.MethodPut, a.config.BucketName, fileKey, a.config.PresignTTL, reqParams, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned URL for part: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PresignTTL)
	return presignedURL.String(), &expiresAt, nil
}

// CompleteMultipartUpload merges all parts into one object
func (a *Adapter) CompleteMultipartUpload(ctx context.Context, fileKey string, uploadID string, parts []domain.CompletedPart) (*domain.CompletedUpload, error) {

	sort.Slice(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})

	completeParts := make([]minio.CompletePart, 0, len(parts))
	for _, part := range parts {
		completeParts = append(completeParts, minio.CompletePart{
			PartNumber: part.PartNumber,
			ETag:       strings.Trim(part.ETag, "\""),
		})
	}

	info, err := a.core.CompleteMultipartUpload(ctx, a.config.BucketName, fileKey, uploadID, completeParts, minio.PutObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	return &domain.CompletedUpload{
		Location: info.Location,
		ETag:     info.ETag,
	}, nil
}

// AbortMultipartUpload discards the session and any unmerged part data
func (a *Adapter) AbortMultipartUpload(ctx context.Context, fileKey string, uploadID string) error {
	err := a.core.AbortMultipartUpload(ctx, a.config.BucketName, fileKey, uploadID)
	if err != nil {
		return fmt.Errorf("failed to abort multipart upload: %w", err)
	}

	a.logger.Info("multipart upload aborted",
		slog.String("fileKey", fileKey),
		slog.String("uploadID", uploadID))

	return nil
}
