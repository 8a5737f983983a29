package upload

import (
	"encoding/json"
	"net/http"

	"github.com/aodysseos/ai-dashboard/internal/api"
	"github.com/aodysseos/ai-dashboard/internal/core/domain"
)

// PresignedPartV1 generates a presigned URL for uploading one numbered part
func (h *HandlerV1) PresignedPartV1(w http.ResponseWriter, r *http.Request) {

	var req api.PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding presigned part request", "error", err)
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

	if req.PartNumber < domain.MinPartNumber || req.PartNumber > domain.MaxPartNumber {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "INVALID_PART_NUMBER",
			Message: "Part number must be between 1 and 10000",
		})
		return
	}

	part, err := h.uploadService.SignPart(r.Context(), req.Key, req.UploadID, req.PartNumber)
	if err != nil {
		h.logger.Error("error generating presigned part url", "error", err, "key", req.Key, "partNumber", req.PartNumber)
		api.WriteErrors(w, http.StatusInternalServerError, api.Error{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to generate pre-signed part URL",
		})
		return
	}

	api.WriteData(w, http.StatusOK, api.PartResponse{
		PartNumber: part.PartNumber,
		UploadURL:  part.URL,
		ExpiresAt:  part.ExpiresAt,
	})
}
