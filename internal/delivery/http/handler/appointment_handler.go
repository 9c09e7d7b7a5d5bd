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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	view := r.URL.Query().Get("view")

	appointments := h.appointmentUsecase.List(search, view)
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointment, err := h.appointmentUsecase.Get(vars["id"])
	if err != nil {
		response.NotFound(w, "Appointment not found")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(&req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(vars["id"], &req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Messages)
			return
		}
		response.InternalServerError(w, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.appointmentUsecase.Delete(vars["id"])
	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
