// Package export builds downloadable artifacts from a snapshot of the
// collections plus the signed-in profile. The build is pure and fully
// in-memory: either a complete artifact comes back or an error, never a
// partial document.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-tracker/internal/domain/entity"
)

// Format selects the artifact type. PDF ships as a styled, print-ready
// HTML document.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ErrNothingSelected is returned when the selection mask is empty.
var ErrNothingSelected = errors.New("no data selected for export")

// Selection is the mask of sections to include.
type Selection struct {
	Profile      bool
	Records      bool
	Medications  bool
	Appointments bool
}

func (s Selection) empty() bool {
	return !s.Profile && !s.Records && !s.Medications && !s.Appointments
}

// Snapshot is the point-in-time input to a build.
type Snapshot struct {
	Profile      *entity.User
	Records      []entity.HealthRecord
	Medications  []entity.Medication
	Appointments []entity.Appointment
}

// Artifact is the finished export, ready for the download boundary.
type Artifact struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Build produces the artifact for the given selection and format. The only
// non-determinism is the embedded timestamp taken from now.
func Build(snap Snapshot, sel Selection, format Format, now time.Time) (*Artifact, error) {
	if sel.empty() {
		return nil, ErrNothingSelected
	}

	base := fmt.Sprintf("health-records-%s", now.Format("2006-01-02"))

	switch format {
	case FormatJSON:
		content, err := buildJSON(snap, sel, now)
		if err != nil {
			return nil, err
		}
		return &Artifact{Content: content, ContentType: "application/json", Filename: base + ".json"}, nil
	case FormatCSV:
		content, err := buildCSV(snap, sel)
		if err != nil {
			return nil, err
		}
		return &Artifact{Content: content, ContentType: "text/csv", Filename: base + ".csv"}, nil
	case FormatPDF:
		content, err := buildHTML(snap, sel, now)
		if err != nil {
			return nil, err
		}
		return &Artifact{Content: content, ContentType: "text/html", Filename: base + ".html"}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// profileSection is the exported shape of the profile, mirroring what the
// profile screen shows.
type profileSection struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Phone            string `json:"phone,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	MemberSince      string `json:"memberSince"`
}

func newProfileSection(u *entity.User) *profileSection {
	return &profileSection{
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		DateOfBirth:      u.DateOfBirth,
		Phone:            u.Phone,
		EmergencyContact: u.EmergencyContact,
		MemberSince:      u.CreatedAt.Format(time.RFC3339),
	}
}

func buildJSON(snap Snapshot, sel Selection, now time.Time) ([]byte, error) {
	doc := make(map[string]interface{})

	if sel.Profile && snap.Profile != nil {
		doc["profile"] = newProfileSection(snap.Profile)
	}
	if sel.Records {
		doc["healthRecords"] = nonNilRecords(snap.Records)
	}
	if sel.Medications {
		doc["medications"] = nonNilMedications(snap.Medications)
	}
	if sel.Appointments {
		doc["appointments"] = nonNilAppointments(snap.Appointments)
	}
	doc["exportDate"] = now.Format(time.RFC3339)
	if snap.Profile != nil {
		doc["exportedBy"] = snap.Profile.Name
	}

	return json.MarshalIndent(doc, "", "  ")
}

func nonNilRecords(records []entity.HealthRecord) []entity.HealthRecord {
	if records == nil {
		return []entity.HealthRecord{}
	}
	return records
}

func nonNilMedications(medications []entity.Medication) []entity.Medication {
	if medications == nil {
		return []entity.Medication{}
	}
	return medications
}

func nonNilAppointments(appointments []entity.Appointment) []entity.Appointment {
	if appointments == nil {
		return []entity.Appointment{}
	}
	return appointments
}

// displayDate renders an ISO date for human-facing sections; unparseable
// input passes through untouched.
func displayDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
