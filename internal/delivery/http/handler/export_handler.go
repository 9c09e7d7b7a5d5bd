package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/export"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
	validator     *validator.CustomValidator
}

func NewExportHandler(exportUsecase usecase.ExportUsecase, validator *validator.CustomValidator) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
		validator:     validator,
	}
}

// Export builds the selected artifact and streams it back as a download.
// The request context rides along so a disconnected client abandons the
// in-flight export.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	artifact, err := h.exportUsecase.Export(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNothingSelected):
			response.Error(w, http.StatusBadRequest, "No data selected for export", nil)
		case errors.Is(err, context.Canceled):
			// Client went away mid-delay; nothing to answer.
		default:
			response.InternalServerError(w, "Failed to export data")
		}
		return
	}

	response.Download(w, artifact.Content, artifact.ContentType, artifact.Filename)
}
