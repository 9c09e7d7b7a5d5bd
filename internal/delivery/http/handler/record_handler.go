package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"

	"github.com/gorilla/mux"
)

type RecordHandler struct {
	recordUsecase usecase.HealthRecordUsecase
	validator     *validator.CustomValidator
}

func NewRecordHandler(recordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *RecordHandler {
	return &RecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	recordType := r.URL.Query().Get("type")

	records := h.recordUsecase.List(search, recordType)
	response.Success(w, http.StatusOK, "Health records retrieved successfully", records)
}

func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	record, err := h.recordUsecase.Get(vars["id"])
	if err != nil {
		response.NotFound(w, "Health record not found")
		return
	}

	response.Success(w, http.StatusOK, "Health record retrieved successfully", record)
}

func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(&req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to create health record")
		return
	}

	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(vars["id"], &req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to update health record")
		return
	}

	response.Success(w, http.StatusOK, "Health record updated successfully", record)
}

func (h *RecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.recordUsecase.Delete(vars["id"])
	response.Success(w, http.StatusOK, "Health record deleted successfully", nil)
}
