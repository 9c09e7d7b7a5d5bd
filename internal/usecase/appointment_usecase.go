package usecase

import (
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/query"
	"health-tracker/internal/store"
	"health-tracker/internal/validation"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	List(search, view string) *dto.AppointmentListResponse
	Get(id string) (*dto.AppointmentResponse, error)
	Create(req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(id string)
}

type appointmentUsecase struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewAppointmentUsecase(st *store.Store, log *logrus.Logger) AppointmentUsecase {
	return &appointmentUsecase{
		store: st,
		log:   log,
		now:   time.Now,
	}
}

func (u *appointmentUsecase) List(search, view string) *dto.AppointmentListResponse {
	now := u.now()
	all := u.store.Appointments()

	bucket := query.Bucket(view)
	if view == "" {
		bucket = query.BucketUpcoming
	}

	filtered := query.SortAppointments(query.FilterAppointments(all, search, bucket, now))
	counts := query.CountAppointments(all, now)

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(filtered, now),
		Total:        len(filtered),
		Upcoming:     counts.Upcoming,
		Today:        counts.Today,
		Completed:    counts.Completed,
	}
}

func (u *appointmentUsecase) Get(id string) (*dto.AppointmentResponse, error) {
	appointment, ok := u.store.AppointmentByID(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment, u.now()), nil
}

func (u *appointmentUsecase) Create(req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	now := u.now()
	candidate := entity.Appointment{
		Type:     entity.AppointmentType(req.Type),
		Title:    req.Title,
		Doctor:   req.Doctor,
		Location: req.Location,
		Date:     req.Date,
		Time:     req.Time,
		Notes:    req.Notes,
		Reminder: req.Reminder,
	}
	if err := validationFailed(validation.ValidateAppointment(&candidate, validation.OpCreate, now)); err != nil {
		return nil, err
	}

	id := u.store.AddAppointment(candidate)
	u.log.Infof("Appointment %s created", id)

	appointment, _ := u.store.AppointmentByID(id)
	return converter.AppointmentToResponse(appointment, now), nil
}

// Update accepts past instants: the future-time rule applies on create
// only, so marking an old appointment completed keeps working.
func (u *appointmentUsecase) Update(id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	now := u.now()
	candidate := entity.Appointment{
		Type:      entity.AppointmentType(req.Type),
		Title:     req.Title,
		Doctor:    req.Doctor,
		Location:  req.Location,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Completed: req.Completed,
		Reminder:  req.Reminder,
	}
	if err := validationFailed(validation.ValidateAppointment(&candidate, validation.OpEdit, now)); err != nil {
		return nil, err
	}

	appointmentType := entity.AppointmentType(req.Type)
	updated := u.store.UpdateAppointment(id, store.AppointmentPatch{
		Type:      &appointmentType,
		Title:     &req.Title,
		Doctor:    &req.Doctor,
		Location:  &req.Location,
		Date:      &req.Date,
		Time:      &req.Time,
		Notes:     &req.Notes,
		Completed: &req.Completed,
		Reminder:  &req.Reminder,
	})
	return converter.AppointmentToResponse(updated, now), nil
}

func (u *appointmentUsecase) Delete(id string) {
	u.store.RemoveAppointment(id)
}
