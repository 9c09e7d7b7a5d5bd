package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"health-tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	testProfile = entity.User{
		ID:        "u1",
		Email:     "jane@example.com",
		Name:      "Jane Doe",
		Role:      entity.RolePatient,
		Phone:     "555-0100",
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	testSnapshot = Snapshot{
		Profile: &testProfile,
		Records: []entity.HealthRecord{
			{
				ID:          "r1",
				Type:        entity.RecordTypeAllergy,
				Title:       "Peanut allergy",
				Description: "chest pain, mild shortness of breath",
				Date:        "2024-06-01",
				Severity:    entity.SeverityHigh,
			},
		},
		Medications: []entity.Medication{
			{
				ID:           "m1",
				Name:         "Aspirin",
				Dosage:       "100mg",
				Frequency:    "daily",
				StartDate:    "2024-01-01",
				PrescribedBy: "Smith",
				IsActive:     true,
			},
		},
		Appointments: []entity.Appointment{
			{
				ID:       "a1",
				Type:     entity.AppointmentTypeCheckup,
				Title:    "Annual checkup",
				Doctor:   "Smith",
				Location: "City Clinic",
				Date:     "2025-02-01",
				Time:     "09:30",
			},
		},
	}
)

func TestBuild_EmptySelection(t *testing.T) {
	_, err := Build(testSnapshot, Selection{}, FormatJSON, testNow)
	assert.ErrorIs(t, err, ErrNothingSelected)
}

func TestBuild_UnsupportedFormat(t *testing.T) {
	_, err := Build(testSnapshot, Selection{Records: true}, Format("xml"), testNow)
	assert.Error(t, err)
}

func TestBuild_FilenameCarriesDate(t *testing.T) {
	tests := []struct {
		format   Format
		filename string
	}{
		{FormatJSON, "health-records-2025-01-15.json"},
		{FormatCSV, "health-records-2025-01-15.csv"},
		{FormatPDF, "health-records-2025-01-15.html"},
	}
	for _, tt := range tests {
		artifact, err := Build(testSnapshot, Selection{Records: true}, tt.format, testNow)
		require.NoError(t, err)
		assert.Equal(t, tt.filename, artifact.Filename)
	}
}

func TestBuildJSON_SelectionMasksSections(t *testing.T) {
	artifact, err := Build(testSnapshot, Selection{Records: true, Medications: true}, FormatJSON, testNow)
	require.NoError(t, err)
	assert.Equal(t, "application/json", artifact.ContentType)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(artifact.Content, &doc))

	assert.Contains(t, doc, "healthRecords")
	assert.Contains(t, doc, "medications")
	assert.NotContains(t, doc, "profile")
	assert.NotContains(t, doc, "appointments")
	assert.Contains(t, doc, "exportDate")
	assert.Contains(t, doc, "exportedBy")
}

func TestBuildJSON_SelectedEmptyCollectionIsPresent(t *testing.T) {
	snap := Snapshot{Profile: &testProfile}
	artifact, err := Build(snap, Selection{Medications: true}, FormatJSON, testNow)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(artifact.Content, &doc))

	require.Contains(t, doc, "medications")
	var medications []entity.Medication
	require.NoError(t, json.Unmarshal(doc["medications"], &medications))
	assert.Empty(t, medications)
}

func TestBuildJSON_ProfileShape(t *testing.T) {
	artifact, err := Build(testSnapshot, Selection{Profile: true}, FormatJSON, testNow)
	require.NoError(t, err)

	var doc struct {
		Profile struct {
			Name        string `json:"name"`
			Email       string `json:"email"`
			Role        string `json:"role"`
			MemberSince string `json:"memberSince"`
		} `json:"profile"`
		ExportDate string `json:"exportDate"`
		ExportedBy string `json:"exportedBy"`
	}
	require.NoError(t, json.Unmarshal(artifact.Content, &doc))

	assert.Equal(t, "Jane Doe", doc.Profile.Name)
	assert.Equal(t, "patient", doc.Profile.Role)
	assert.Equal(t, "2024-03-01T00:00:00Z", doc.Profile.MemberSince)
	assert.Equal(t, "2025-01-15T10:30:00Z", doc.ExportDate)
	assert.Equal(t, "Jane Doe", doc.ExportedBy)
}

func TestBuildCSV_CommaFieldsSurviveAParser(t *testing.T) {
	artifact, err := Build(testSnapshot, Selection{Records: true}, FormatCSV, testNow)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", artifact.ContentType)

	content := string(artifact.Content)
	assert.True(t, strings.HasPrefix(content, "Health Records\n"))
	assert.Contains(t, content, `"chest pain, mild shortness of breath"`)

	// The rows after the section title parse as regular CSV.
	body := strings.TrimPrefix(content, "Health Records\n")
	reader := csv.NewReader(bytes.NewReader([]byte(strings.TrimSpace(body))))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Type", rows[0][0])
	assert.Equal(t, "chest pain, mild shortness of breath", rows[1][2])
}

func TestBuildCSV_SectionsAndOrder(t *testing.T) {
	artifact, err := Build(testSnapshot, Selection{Profile: true, Records: true, Medications: true, Appointments: true}, FormatCSV, testNow)
	require.NoError(t, err)

	content := string(artifact.Content)
	profileAt := strings.Index(content, "Profile Information")
	recordsAt := strings.Index(content, "Health Records")
	medicationsAt := strings.Index(content, "Medications")
	appointmentsAt := strings.Index(content, "Appointments")

	require.GreaterOrEqual(t, profileAt, 0)
	assert.Greater(t, recordsAt, profileAt)
	assert.Greater(t, medicationsAt, recordsAt)
	assert.Greater(t, appointmentsAt, medicationsAt)
}

func TestBuildCSV_UnselectedAndEmptySectionsOmitted(t *testing.T) {
	snap := testSnapshot
	snap.Medications = nil

	artifact, err := Build(snap, Selection{Records: true, Medications: true}, FormatCSV, testNow)
	require.NoError(t, err)

	content := string(artifact.Content)
	assert.Contains(t, content, "Health Records")
	assert.NotContains(t, content, "Medications")
	assert.NotContains(t, content, "Profile Information")
}

func TestBuildHTML_Document(t *testing.T) {
	artifact, err := Build(testSnapshot, Selection{Profile: true, Records: true, Medications: true, Appointments: true}, FormatPDF, testNow)
	require.NoError(t, err)
	assert.Equal(t, "text/html", artifact.ContentType)

	content := string(artifact.Content)
	assert.Contains(t, content, "<h1>Personal Health Records</h1>")
	assert.Contains(t, content, "Exported by: Jane Doe")
	assert.Contains(t, content, "Export Date: Jan 15, 2025")
	assert.Contains(t, content, "Profile Information")
	assert.Contains(t, content, "Health Records (1 records)")
	assert.Contains(t, content, "Medications (1 medications)")
	assert.Contains(t, content, "Appointments (1 appointments)")
	assert.Contains(t, content, "Dr. Smith")
	assert.Contains(t, content, "Feb 1, 2025")
	assert.Contains(t, content, "This document contains your personal health information")
}

func TestBuildHTML_FallbacksForMissingOptionalFields(t *testing.T) {
	profile := testProfile
	profile.Phone = ""
	snap := Snapshot{Profile: &profile}

	artifact, err := Build(snap, Selection{Profile: true}, FormatPDF, testNow)
	require.NoError(t, err)

	assert.Contains(t, string(artifact.Content), "Not provided")
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Jun 1, 2024", displayDate("2024-06-01"))
	assert.Equal(t, "junk", displayDate("junk"))
}
