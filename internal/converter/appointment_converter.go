package converter

import (
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/query"
)

// AppointmentToResponse converts an Appointment entity to its response DTO,
// stamping the display-only overdue flag relative to now.
func AppointmentToResponse(appointment *entity.Appointment, now time.Time) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Type:      string(appointment.Type),
		Title:     appointment.Title,
		Doctor:    appointment.Doctor,
		Location:  appointment.Location,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Notes:     appointment.Notes,
		Completed: appointment.Completed,
		Reminder:  appointment.Reminder,
		Overdue:   query.IsOverdue(appointment, now),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment, now time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], now)
	}
	return responses
}
