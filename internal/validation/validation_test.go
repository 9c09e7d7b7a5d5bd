package validation

import (
	"testing"
	"time"

	"health-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateHealthRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   entity.HealthRecord
		expected []string
	}{
		{
			name: "valid record",
			record: entity.HealthRecord{
				Type:        entity.RecordTypeAllergy,
				Title:       "Peanut allergy",
				Description: "Severe reaction",
				Date:        "2024-03-01",
			},
			expected: nil,
		},
		{
			name:   "all required fields missing",
			record: entity.HealthRecord{},
			expected: []string{
				"Title is required",
				"Description is required",
				"Date is required",
			},
		},
		{
			name: "whitespace-only text fields",
			record: entity.HealthRecord{
				Title:       "   ",
				Description: "\t",
				Date:        "2024-03-01",
			},
			expected: []string{
				"Title is required",
				"Description is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateHealthRecord(&tt.record))
		})
	}
}

func TestValidateMedication(t *testing.T) {
	tests := []struct {
		name       string
		medication entity.Medication
		expected   []string
	}{
		{
			name: "valid medication",
			medication: entity.Medication{
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-01-01",
				PrescribedBy: "Smith",
			},
			expected: nil,
		},
		{
			name:       "all required fields missing",
			medication: entity.Medication{},
			expected: []string{
				"Medication name is required",
				"Dosage is required",
				"Frequency is required",
				"Start date is required",
				"Prescribing doctor is required",
			},
		},
		{
			name: "end date before start date",
			medication: entity.Medication{
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-06-01",
				EndDate:      "2024-05-01",
				PrescribedBy: "Smith",
			},
			expected: []string{"End date cannot be earlier than start date"},
		},
		{
			name: "end date equal to start date is allowed",
			medication: entity.Medication{
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-06-01",
				EndDate:      "2024-06-01",
				PrescribedBy: "Smith",
			},
			expected: nil,
		},
		{
			name: "reminders enabled without times",
			medication: entity.Medication{
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-01-01",
				PrescribedBy: "Smith",
				Reminders:    true,
			},
			expected: []string{"At least one reminder time is required when reminders are enabled"},
		},
		{
			name: "reminders disabled without times is fine",
			medication: entity.Medication{
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-01-01",
				PrescribedBy: "Smith",
				Reminders:    false,
			},
			expected: nil,
		},
		{
			name: "reminders enabled with a time",
			medication: entity.Medication{
				Name:          "Aspirin",
				Dosage:        "100mg",
				Frequency:     "daily",
				StartDate:     "2024-01-01",
				PrescribedBy:  "Smith",
				Reminders:     true,
				ReminderTimes: []string{"08:00"},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateMedication(&tt.medication))
		})
	}
}

func TestValidateAppointment(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)

	valid := entity.Appointment{
		Type:     entity.AppointmentTypeCheckup,
		Title:    "Annual checkup",
		Doctor:   "Smith",
		Location: "Clinic",
		Date:     "2025-06-01",
		Time:     "09:30",
	}

	t.Run("valid future appointment on create", func(t *testing.T) {
		a := valid
		assert.Empty(t, ValidateAppointment(&a, OpCreate, now))
	})

	t.Run("all required fields missing", func(t *testing.T) {
		assert.Equal(t, []string{
			"Appointment title is required",
			"Doctor name is required",
			"Location is required",
			"Date is required",
			"Time is required",
		}, ValidateAppointment(&entity.Appointment{}, OpCreate, now))
	})

	t.Run("past instant rejected on create", func(t *testing.T) {
		a := valid
		a.Date = "2024-01-01"
		assert.Equal(t, []string{"Appointment time must be in the future"}, ValidateAppointment(&a, OpCreate, now))
	})

	t.Run("instant equal to now rejected on create", func(t *testing.T) {
		a := valid
		a.Date = "2025-01-01"
		a.Time = "12:00"
		assert.Equal(t, []string{"Appointment time must be in the future"}, ValidateAppointment(&a, OpCreate, now))
	})

	t.Run("past instant allowed on edit", func(t *testing.T) {
		a := valid
		a.Date = "2024-01-01"
		assert.Empty(t, ValidateAppointment(&a, OpEdit, now))
	})
}
