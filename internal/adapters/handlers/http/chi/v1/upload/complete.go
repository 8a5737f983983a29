package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
	"github.com/aodysseos/ai-dashboard/internal/core/service/upload"
)

// CompleteMultipartV1 merges all uploaded parts and finalizes the session
func (h *HandlerV1) CompleteMultipartV1(w http.ResponseWriter, r *http.Request) {

	var req api.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding complete request", "error", err)
		api.WriteErrors(w, http.StatusBadRequest, api.Error{Code: "VALIDATION_ERROR", Message: "Invalid request body"})
		return
	}

	var validationErrors []api.Error
	if req.UploadID == "" {
		validationErrors = append(validationErrors, api.Error{
			Code:    "VALIDATION_ERROR",
			Message: "Upload ID is required",
			Field:   "uploadId",
		})
	}
	if req.Key == "" {
		validationErrors = append(validationErrors, api.Error{
			Code:    "VALIDATION_ERROR",
			Message: "Storage key is required",
			Field:   "key",
		})
	}
	if len(validationErrors) > 0 {
		api.WriteErrors(w, http.StatusBadRequest, validationErrors...)
		return
	}

	if len(req.Parts) == 0 {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "NO_PARTS",
			Message: "At least one part is required",
		})
		return
	}

	parts := make([]domain.CompletedPart, 0, len(req.Parts))
	for i, part := range req.Parts {
		if part.PartNumber < domain.MinPartNumber || part.PartNumber > domain.MaxPartNumber {
			validationErrors = append(validationErrors, api.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Part number must be between 1 and 10000",
				Field:   fmt.Sprintf("parts[%d].partNumber", i),
			})
		}
		if part.ETag == "" {
			validationErrors = append(validationErrors, api.Error{
				Code:    "VALIDATION_ERROR",
				Message: "ETag is required for each part",
				Field:   fmt.Sprintf("parts[%d].etag", i),
			})
		}
		parts = append(parts, domain.CompletedPart{
			PartNumber: part.PartNumber,
			ETag:       part.ETag,
		})
	}
	if len(validationErrors) > 0 {
		api.WriteErrors(w, http.StatusBadRequest, validationErrors...)
		return
	}

	if err := upload.ValidatePartSequence(parts); err != nil {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "INVALID_PART_SEQUENCE",
			Message: "Part numbers must be sequential starting from 1",
		})
		return
	}

	completed, err := h.uploadService.Complete(r.Context(), req.Key, req.UploadID, parts)
	switch {
	case errors.Is(err, domain.ErrCompleteFailed):
		h.logger.Error("store returned incomplete completion reply", "key", req.Key)
		api.WriteErrors(w, http.StatusInternalServerError, api.Error{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to complete multipart upload",
		})
		return
	case err != nil:
		h.logger.Error("error completing multipart upload", "error", err, "key", req.Key)
		api.WriteErrors(w, http.StatusInternalServerError, api.Error{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to complete multipart upload",
		})
		return
	}

	api.WriteData(w, http.StatusOK, api.CompleteResponse{
		Location: completed.Location,
		ETag:     completed.ETag,
	})
}
