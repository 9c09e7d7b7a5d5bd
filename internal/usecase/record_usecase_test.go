package usecase

import (
	"testing"

	"health-tracker/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRecordUsecase_CreateAndGet(t *testing.T) {
	uc := NewHealthRecordUsecase(newTestStore(t), testLogger())

	created, err := uc.Create(&dto.CreateHealthRecordRequest{
		Type:        "allergy",
		Title:       "Peanut allergy",
		Description: "Severe reaction",
		Date:        "2024-03-01",
		Severity:    "high",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peanut allergy", fetched.Title)
	assert.Equal(t, "high", fetched.Severity)
}

func TestHealthRecordUsecase_CreateInvalid(t *testing.T) {
	uc := NewHealthRecordUsecase(newTestStore(t), testLogger())

	_, err := uc.Create(&dto.CreateHealthRecordRequest{Type: "vital"})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{
		"Title is required",
		"Description is required",
		"Date is required",
	}, ve.Messages)
}

func TestHealthRecordUsecase_GetUnknown(t *testing.T) {
	uc := NewHealthRecordUsecase(newTestStore(t), testLogger())

	_, err := uc.Get("missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestHealthRecordUsecase_ListFilters(t *testing.T) {
	uc := NewHealthRecordUsecase(newTestStore(t), testLogger())

	for _, req := range []*dto.CreateHealthRecordRequest{
		{Type: "allergy", Title: "Peanut allergy", Description: "Severe", Date: "2024-01-01"},
		{Type: "vital", Title: "Blood pressure", Description: "Routine", Date: "2024-02-01"},
		{Type: "test", Title: "Blood test", Description: "Annual", Date: "2024-03-01"},
	} {
		_, err := uc.Create(req)
		require.NoError(t, err)
	}

	all := uc.List("", "")
	assert.Equal(t, 3, all.Total)

	byType := uc.List("", "vital")
	require.Equal(t, 1, byType.Total)
	assert.Equal(t, "Blood pressure", byType.Records[0].Title)

	bySearch := uc.List("blood", "")
	assert.Equal(t, 2, bySearch.Total)
}

func TestHealthRecordUsecase_UpdateAndDelete(t *testing.T) {
	uc := NewHealthRecordUsecase(newTestStore(t), testLogger())

	created, err := uc.Create(&dto.CreateHealthRecordRequest{
		Type:        "vital",
		Title:       "Blood pressure",
		Description: "Routine",
		Date:        "2024-02-01",
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, &dto.UpdateHealthRecordRequest{
		Type:        "vital",
		Title:       "Blood pressure",
		Description: "Follow-up reading",
		Date:        "2024-02-01",
		Value:       "130/85",
	})
	require.NoError(t, err)
	assert.Equal(t, "Follow-up reading", updated.Description)
	assert.Equal(t, "130/85", updated.Value)

	uc.Delete(created.ID)
	_, err = uc.Get(created.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
