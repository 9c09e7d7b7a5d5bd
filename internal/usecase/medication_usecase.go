package usecase

import (
	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/query"
	"health-tracker/internal/store"
	"health-tracker/internal/validation"

	"github.com/sirupsen/logrus"
)

type MedicationUsecase interface {
	List(search, status string) *dto.MedicationListResponse
	Get(id string) (*dto.MedicationResponse, error)
	Create(req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error)
	Update(id string, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error)
	Delete(id string)
}

type medicationUsecase struct {
	store *store.Store
	log   *logrus.Logger
}

func NewMedicationUsecase(st *store.Store, log *logrus.Logger) MedicationUsecase {
	return &medicationUsecase{
		store: st,
		log:   log,
	}
}

func (u *medicationUsecase) List(search, status string) *dto.MedicationListResponse {
	all := u.store.Medications()
	filtered := query.FilterMedications(all, search, query.Status(status))
	counts := query.CountMedications(all)

	return &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(filtered),
		Total:       len(filtered),
		Active:      counts.Active,
		Inactive:    counts.Inactive,
		Reminders:   counts.WithReminders,
	}
}

func (u *medicationUsecase) Get(id string) (*dto.MedicationResponse, error) {
	medication, ok := u.store.MedicationByID(id)
	if !ok {
		return nil, ErrMedicationNotFound
	}
	return converter.MedicationToResponse(medication), nil
}

func (u *medicationUsecase) Create(req *dto.CreateMedicationRequest) (*dto.MedicationResponse, error) {
	candidate := medicationFromRequest(req)
	if err := validationFailed(validation.ValidateMedication(&candidate)); err != nil {
		return nil, err
	}

	id := u.store.AddMedication(candidate)
	u.log.Infof("Medication %s created", id)

	medication, _ := u.store.MedicationByID(id)
	return converter.MedicationToResponse(medication), nil
}

func (u *medicationUsecase) Update(id string, req *dto.UpdateMedicationRequest) (*dto.MedicationResponse, error) {
	candidate := medicationFromRequest(req)
	if err := validationFailed(validation.ValidateMedication(&candidate)); err != nil {
		return nil, err
	}

	reminderTimes := req.ReminderTimes
	updated := u.store.UpdateMedication(id, store.MedicationPatch{
		Name:          &req.Name,
		Dosage:        &req.Dosage,
		Frequency:     &req.Frequency,
		StartDate:     &req.StartDate,
		EndDate:       &req.EndDate,
		PrescribedBy:  &req.PrescribedBy,
		Instructions:  &req.Instructions,
		Reminders:     &req.Reminders,
		ReminderTimes: &reminderTimes,
		IsActive:      &req.IsActive,
	})
	return converter.MedicationToResponse(updated), nil
}

func (u *medicationUsecase) Delete(id string) {
	u.store.RemoveMedication(id)
}

func medicationFromRequest(req *dto.CreateMedicationRequest) entity.Medication {
	return entity.Medication{
		Name:          req.Name,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PrescribedBy:  req.PrescribedBy,
		Instructions:  req.Instructions,
		Reminders:     req.Reminders,
		ReminderTimes: req.ReminderTimes,
		IsActive:      req.IsActive,
	}
}
