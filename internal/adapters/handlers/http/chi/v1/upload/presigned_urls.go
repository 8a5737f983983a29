package upload

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
)

// PresignedURLsV1 generates presigned URLs for a batch of single-shot uploads
func (h *HandlerV1) PresignedURLsV1(w http.ResponseWriter, r *http.Request) {

	var req api.PresignedURLsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding presigned urls request", "error", err)
		api.WriteErrors(w, http.StatusBadRequest, api.Error{Code: "VALIDATION_ERROR", Message: "Invalid request body"})
		return
	}

	if len(req.Files) == 0 {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{Code: "NO_FILES", Message: "At least one file is required"})
		return
	}

	if len(req.Files) > h.uploadCfg.MaxFiles {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "TOO_MANY_FILES",
			Message: fmt.Sprintf("Maximum %d files allowed per request", h.uploadCfg.MaxFiles),
		})
		return
	}

	var validationErrors []api.Error
	for i, file := range req.Files {
		if file.ContentType != h.uploadCfg.AcceptedContentType {
			validationErrors = append(validationErrors, api.Error{
				Code:    "INVALID_FILE_TYPE",
				Message: "Only PDF files are allowed",
				Field:   fmt.Sprintf("files[%d].contentType", i),
			})
		}
		if file.Size > int64(h.uploadCfg.SingleUploadMaxSize) {
			validationErrors = append(validationErrors, api.Error{
				Code:    "FILE_TOO_LARGE",
				Message: fmt.Sprintf("File size must not exceed %dMB", int64(h.uploadCfg.SingleUploadMaxSize)/(1024*1024)),
				Field:   fmt.Sprintf("files[%d].size", i),
			})
		}
		if file.Size <= 0 {
			validationErrors = append(validationErrors, api.Error{
				Code:    "INVALID_FILE_SIZE",
				Message: "File size must be greater than 0",
				Field:   fmt.Sprintf("files[%d].size", i),
			})
		}
		if strings.TrimSpace(file.Filename) == "" {
			validationErrors = append(validationErrors, api.Error{
				Code:    "MISSING_FILENAME",
				Message: "Filename is required",
				Field:   fmt.Sprintf("files[%d].filename", i),
			})
		} else if len(file.Filename) > 255 {
			validationErrors = append(validationErrors, api.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Filename must be a non-empty string (max 255 characters)",
				Field:   fmt.Sprintf("files[%d].filename", i),
			})
		}
	}
	if len(validationErrors) > 0 {
		api.WriteErrors(w, http.StatusBadRequest, validationErrors...)
		return
	}

	uploads := make([]api.PresignedURL, 0, len(req.Files))
	for _, file := range req.Files {
		key := upload.GenerateStorageKey(file.Filename)

		presigned, err := h.uploadService.PresignUpload(r.Context(), key, file.ContentType)
		if err != nil {
			h.logger.Error("error generating presigned url", "error", err, "key", key)
			api.WriteErrors(w, http.StatusInternalServerError, api.Error{
				Code:    "INTERNAL_ERROR",
				Message: "Failed to generate pre-signed URLs",
			})
			return
		}

		uploads = append(uploads, api.PresignedURL{
			Key:       presigned.Key,
			UploadURL: presigned.URL,
			ExpiresAt: presigned.ExpiresAt,
		})
	}

	api.WriteData(w, http.StatusOK, api.PresignedURLsResponse{Uploads: uploads})
}
