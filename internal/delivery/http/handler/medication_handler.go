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

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	medications := h.medicationUsecase.List(search, status)
	response.Success(w, http.StatusOK, "Medications retrieved successfully", medications)
}

func (h *MedicationHandler) GetMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	medication, err := h.medicationUsecase.Get(vars["id"])
	if err != nil {
		response.NotFound(w, "Medication not found")
		return
	}

	response.Success(w, http.StatusOK, "Medication retrieved successfully", medication)
}

func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.Create(&req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to create medication")
		return
	}

	response.Success(w, http.StatusCreated, "Medication created successfully", medication)
}

func (h *MedicationHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.Update(vars["id"], &req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to update medication")
		return
	}

	response.Success(w, http.StatusOK, "Medication updated successfully", medication)
}

func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.medicationUsecase.Delete(vars["id"])
	response.Success(w, http.StatusOK, "Medication deleted successfully", nil)
}
