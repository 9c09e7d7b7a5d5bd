package usecase

import (
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/query"
	"health-tracker/internal/store"

	"github.com/sirupsen/logrus"
)

// dashboardPreviewSize caps each dashboard list at a glanceable few items.
const dashboardPreviewSize = 3

type DashboardUsecase interface {
	Get() *dto.DashboardResponse
}

type dashboardUsecase struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewDashboardUsecase(st *store.Store, log *logrus.Logger) DashboardUsecase {
	return &dashboardUsecase{
		store: st,
		log:   log,
		now:   time.Now,
	}
}

func (u *dashboardUsecase) Get() *dto.DashboardResponse {
	now := u.now()

	records := u.store.Records()
	medications := u.store.Medications()
	appointments := u.store.Appointments()

	upcoming := query.UpcomingAppointments(appointments, now, dashboardPreviewSize)
	recent := query.RecentRecords(records, dashboardPreviewSize)

	active := query.FilterMedications(medications, "", query.StatusActive)
	activePreview := active
	if len(activePreview) > dashboardPreviewSize {
		activePreview = activePreview[:dashboardPreviewSize]
	}

	counts := query.CountAppointments(appointments, now)

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			TotalRecords:          len(records),
			ActiveMedications:     len(active),
			UpcomingAppointments:  counts.Upcoming,
			CompletedAppointments: counts.Completed,
		},
		UpcomingAppointments: converter.AppointmentsToResponses(upcoming, now),
		RecentRecords:        converter.RecordsToResponses(recent),
		ActiveMedications:    converter.MedicationsToResponses(activePreview),
	}
}
