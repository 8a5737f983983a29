package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
)

// InitiateMultipartV1 initiates a multipart upload session for a large file
func (h *HandlerV1) InitiateMultipartV1(w http.ResponseWriter, r *http.Request) {

	var req api.InitiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding initiate request", "error", err)
		api.WriteErrors(w, http.StatusBadRequest, api.Error{Code: "VALIDATION_ERROR", Message: "Invalid request body"})
		return
	}

	var validationErrors []api.Error
	if strings.TrimSpace(req.Filename) == "" || len(req.Filename) > 255 {
		validationErrors = append(validationErrors, api.Error{
			Code:    "VALIDATION_ERROR",
			Message: "Filename must be a non-empty string (max 255 characters)",
			Field:   "filename",
		})
	}
	if req.ContentType != h.uploadCfg.AcceptedContentType {
		validationErrors = append(validationErrors, api.Error{
			Code:    "VALIDATION_ERROR",
			Message: "Content type must be " + h.uploadCfg.AcceptedContentType,
			Field:   "contentType",
		})
	}
	if len(validationErrors) > 0 {
		api.WriteErrors(w, http.StatusBadRequest, validationErrors...)
		return
	}

	// Multipart is only worthwhile above the chunking threshold.
	if req.Size <= int64(h.uploadCfg.ChunkSize) {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "FILE_TOO_SMALL",
			Message: fmt.Sprintf("File must be larger than %dMB to use multipart upload", int64(h.uploadCfg.ChunkSize)/(1024*1024)),
		})
		return
	}

	key := upload.GenerateStorageKey(req.Filename)

	result, err := h.uploadService.Initiate(r.Context(), key, req.ContentType)
	switch {
	case errors.Is(err, domain.ErrUnsupportedContentType):
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "INVALID_FILE_TYPE",
			Message: "Only PDF files are allowed",
		})
		return
	case err != nil:
		h.logger.Error("error initiating multipart upload", "error", err, "key", key)
		api.WriteErrors(w, http.StatusInternalServerError, api.Error{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to initiate multipart upload",
		})
		return
	}

	api.WriteData(w, http.StatusOK, api.InitiateResponse{
		UploadID: result.UploadID,
		Key:      result.Key,
	})
}
