package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// MedicationToResponse converts a Medication entity to its response DTO
func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	reminderTimes := medication.ReminderTimes
	if reminderTimes == nil {
		reminderTimes = []string{}
	}

	return &dto.MedicationResponse{
		ID:            medication.ID,
		Name:          medication.Name,
		Dosage:        medication.Dosage,
		Frequency:     medication.Frequency,
		StartDate:     medication.StartDate,
		EndDate:       medication.EndDate,
		PrescribedBy:  medication.PrescribedBy,
		Instructions:  medication.Instructions,
		Reminders:     medication.Reminders,
		ReminderTimes: reminderTimes,
		IsActive:      medication.IsActive,
	}
}

// MedicationsToResponses converts a slice of Medication entities
func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i := range medications {
		responses[i] = *MedicationToResponse(&medications[i])
	}
	return responses
}
