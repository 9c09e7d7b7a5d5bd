package usecase

import (
	"testing"

	"health-tracker/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationUsecase_CreateWithReminders(t *testing.T) {
	uc := NewMedicationUsecase(newTestStore(t), testLogger())

	created, err := uc.Create(&dto.CreateMedicationRequest{
		Name:          "Aspirin",
		Dosage:        "100mg",
		Frequency:     "daily",
		StartDate:     "2024-01-01",
		PrescribedBy:  "Smith",
		Reminders:     true,
		ReminderTimes: []string{"08:00", "20:00"},
		IsActive:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "20:00"}, created.ReminderTimes)
}

func TestMedicationUsecase_CreateRemindersWithoutTimes(t *testing.T) {
	uc := NewMedicationUsecase(newTestStore(t), testLogger())

	_, err := uc.Create(&dto.CreateMedicationRequest{
		Name:         "Aspirin",
		Dosage:       "100mg",
		Frequency:    "daily",
		StartDate:    "2024-01-01",
		PrescribedBy: "Smith",
		Reminders:    true,
	})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"At least one reminder time is required when reminders are enabled"}, ve.Messages)
}

func TestMedicationUsecase_ListStatusFilter(t *testing.T) {
	uc := NewMedicationUsecase(newTestStore(t), testLogger())

	_, err := uc.Create(&dto.CreateMedicationRequest{
		Name: "Aspirin", Dosage: "100mg", Frequency: "daily",
		StartDate: "2024-01-01", PrescribedBy: "Smith", IsActive: true,
	})
	require.NoError(t, err)
	_, err = uc.Create(&dto.CreateMedicationRequest{
		Name: "Old med", Dosage: "5mg", Frequency: "daily",
		StartDate: "2023-01-01", PrescribedBy: "Jones",
	})
	require.NoError(t, err)

	active := uc.List("", "active")
	require.Equal(t, 1, active.Total)
	assert.Equal(t, "Aspirin", active.Medications[0].Name)
	// Counts always cover the whole collection, not the filtered view.
	assert.Equal(t, 1, active.Active)
	assert.Equal(t, 1, active.Inactive)
}

func TestMedicationUsecase_UpdateDeactivates(t *testing.T) {
	uc := NewMedicationUsecase(newTestStore(t), testLogger())

	created, err := uc.Create(&dto.CreateMedicationRequest{
		Name: "Aspirin", Dosage: "100mg", Frequency: "daily",
		StartDate: "2024-01-01", PrescribedBy: "Smith", IsActive: true,
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, &dto.UpdateMedicationRequest{
		Name: "Aspirin", Dosage: "100mg", Frequency: "daily",
		StartDate: "2024-01-01", EndDate: "2024-06-01", PrescribedBy: "Smith",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "2024-06-01", updated.EndDate)
}
