package upload

import (
	"log/slog"

	"github.com/aodysseos/ai-dashboard/internal/config"
	"github.com/aodysseos/ai-dashboard/internal/core/port"
	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	uploadCfg     config.UploadConfig
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1
func NewUploadHandlerV1(service port.UploadService, cfg config.UploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		uploadCfg:     cfg,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/presigned-urls", h.PresignedURLsV1)
	router.Post("/multipart/initiate", h.InitiateMultipartV1)
	router.Post("/multipart/presigned-part", h.PresignedPartV1)
	router.Post("/multipart/complete", h.CompleteMultipartV1)
	router.Delete("/multipart/abort", h.AbortMultipartV1)

	return router
}
