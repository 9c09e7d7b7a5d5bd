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

type HealthRecordUsecase interface {
	List(search, recordType string) *dto.HealthRecordListResponse
	Get(id string) (*dto.HealthRecordResponse, error)
	Create(req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	Update(id string, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	Delete(id string)
}

type healthRecordUsecase struct {
	store *store.Store
	log   *logrus.Logger
}

func NewHealthRecordUsecase(st *store.Store, log *logrus.Logger) HealthRecordUsecase {
	return &healthRecordUsecase{
		store: st,
		log:   log,
	}
}

func (u *healthRecordUsecase) List(search, recordType string) *dto.HealthRecordListResponse {
	records := query.FilterRecords(u.store.Records(), search, recordType)
	return &dto.HealthRecordListResponse{
		Records: converter.RecordsToResponses(records),
		Total:   len(records),
	}
}

func (u *healthRecordUsecase) Get(id string) (*dto.HealthRecordResponse, error) {
	record, ok := u.store.RecordByID(id)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return converter.RecordToResponse(record), nil
}

func (u *healthRecordUsecase) Create(req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	candidate := recordFromRequest(req)
	if err := validationFailed(validation.ValidateHealthRecord(&candidate)); err != nil {
		return nil, err
	}

	id := u.store.AddRecord(candidate)
	u.log.Infof("Health record %s created", id)

	record, _ := u.store.RecordByID(id)
	return converter.RecordToResponse(record), nil
}

// Update takes the full edit-form field set; the store merge is keyed by
// identifier and unknown identifiers stay a silent no-op.
func (u *healthRecordUsecase) Update(id string, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	candidate := recordFromRequest(req)
	if err := validationFailed(validation.ValidateHealthRecord(&candidate)); err != nil {
		return nil, err
	}

	recordType := entity.RecordType(req.Type)
	severity := entity.Severity(req.Severity)
	updated := u.store.UpdateRecord(id, store.HealthRecordPatch{
		Type:        &recordType,
		Title:       &req.Title,
		Description: &req.Description,
		Date:        &req.Date,
		Doctor:      &req.Doctor,
		Severity:    &severity,
		Value:       &req.Value,
		Unit:        &req.Unit,
		Notes:       &req.Notes,
	})
	return converter.RecordToResponse(updated), nil
}

func (u *healthRecordUsecase) Delete(id string) {
	u.store.RemoveRecord(id)
}

func recordFromRequest(req *dto.CreateHealthRecordRequest) entity.HealthRecord {
	return entity.HealthRecord{
		Type:        entity.RecordType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Doctor:      req.Doctor,
		Severity:    entity.Severity(req.Severity),
		Value:       req.Value,
		Unit:        req.Unit,
		Notes:       req.Notes,
	}
}
