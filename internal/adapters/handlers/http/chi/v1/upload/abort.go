package upload

import (
	"encoding/json"
	"net/http"

	"github.com/aodysseos/ai-dashboard/internal/api"
)

// AbortMultipartV1 aborts an upload session and discards its unmerged parts
func (h *HandlerV1) AbortMultipartV1(w http.ResponseWriter, r *http.Request) {

	var req api.AbortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding abort request", "error", err)
		api.WriteErrors(w, http.StatusBadRequest, api.Error{Code: "VALIDATION_ERROR", Message: "Invalid request body"})
		return
	}

	if req.UploadID == "" || req.Key == "" {
		api.WriteErrors(w, http.StatusBadRequest, api.Error{
			Code:    "MISSING_PARAMETERS",
			Message: "uploadId and key are required",
		})
		return
	}

	if err := h.uploadService.Abort(r.Context(), req.Key, req.UploadID); err != nil {
		h.logger.Error("error aborting multipart upload", "error", err, "key", req.Key)
		api.WriteErrors(w, http.StatusInternalServerError, api.Error{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to abort multipart upload",
		})
		return
	}

	api.WriteData(w, http.StatusOK, api.MessageResponse{Message: "Multipart upload aborted successfully"})
}
