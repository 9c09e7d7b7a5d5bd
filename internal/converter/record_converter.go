package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

// RecordToResponse converts a HealthRecord entity to its response DTO
func RecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:          record.ID,
		Type:        string(record.Type),
		Title:       record.Title,
		Description: record.Description,
		Date:        record.Date,
		Doctor:      record.Doctor,
		Severity:    string(record.Severity),
		Value:       record.Value,
		Unit:        record.Unit,
		Notes:       record.Notes,
	}
}

// RecordsToResponses converts a slice of HealthRecord entities
func RecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *RecordToResponse(&records[i])
	}
	return responses
}
