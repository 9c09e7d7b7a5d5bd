package usecase

import (
	"testing"
	"time"

	"health-tracker/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointmentUsecase(t *testing.T, now time.Time) *appointmentUsecase {
	t.Helper()

	return &appointmentUsecase{
		store: newTestStore(t),
		log:   testLogger(),
		now:   func() time.Time { return now },
	}
}

func TestAppointmentUsecase_CreateRejectsPastInstant(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	uc := newTestAppointmentUsecase(t, now)

	_, err := uc.Create(&dto.CreateAppointmentRequest{
		Type:     "checkup",
		Title:    "Old visit",
		Doctor:   "Smith",
		Location: "Clinic",
		Date:     "2024-01-01",
		Time:     "09:00",
	})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Appointment time must be in the future"}, ve.Messages)
}

func TestAppointmentUsecase_UpdateAcceptsPastInstant(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	uc := newTestAppointmentUsecase(t, now)

	created, err := uc.Create(&dto.CreateAppointmentRequest{
		Type:     "checkup",
		Title:    "Visit",
		Doctor:   "Smith",
		Location: "Clinic",
		Date:     "2025-06-01",
		Time:     "09:00",
	})
	require.NoError(t, err)

	// Moving the date into the past and marking completed stays valid.
	updated, err := uc.Update(created.ID, &dto.UpdateAppointmentRequest{
		Type:      "checkup",
		Title:     "Visit",
		Doctor:    "Smith",
		Location:  "Clinic",
		Date:      "2024-06-01",
		Time:      "09:00",
		Completed: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.False(t, updated.Overdue)
}

func TestAppointmentUsecase_ListDefaultsToUpcoming(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	uc := newTestAppointmentUsecase(t, now)

	later := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	_, err := uc.Create(&dto.CreateAppointmentRequest{
		Type: "checkup", Title: "Future visit", Doctor: "Smith", Location: "Clinic",
		Date: later.Format("2006-01-02"), Time: "09:00",
	})
	require.NoError(t, err)

	// A completed appointment lands in the past bucket.
	created, err := uc.Create(&dto.CreateAppointmentRequest{
		Type: "specialist", Title: "Done visit", Doctor: "Jones", Location: "Clinic",
		Date: "2025-07-01", Time: "10:00",
	})
	require.NoError(t, err)
	_, err = uc.Update(created.ID, &dto.UpdateAppointmentRequest{
		Type: "specialist", Title: "Done visit", Doctor: "Jones", Location: "Clinic",
		Date: "2025-07-01", Time: "10:00", Completed: true,
	})
	require.NoError(t, err)

	listed := uc.List("", "")
	require.Equal(t, 1, listed.Total)
	assert.Equal(t, "Future visit", listed.Appointments[0].Title)
	assert.Equal(t, 1, listed.Upcoming)
	assert.Equal(t, 1, listed.Completed)

	past := uc.List("", "past")
	require.Equal(t, 1, past.Total)
	assert.Equal(t, "Done visit", past.Appointments[0].Title)
}

func TestAppointmentUsecase_OverdueFlag(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)
	uc := newTestAppointmentUsecase(t, now)

	created, err := uc.Create(&dto.CreateAppointmentRequest{
		Type: "checkup", Title: "Visit", Doctor: "Smith", Location: "Clinic",
		Date: "2025-06-01", Time: "09:00",
	})
	require.NoError(t, err)

	// Advance the clock beyond the appointment instant.
	uc.now = func() time.Time { return time.Date(2025, 7, 1, 12, 0, 0, 0, time.Local) }

	fetched, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Overdue)
}
