// Package validation holds the per-entity field rules. Each check returns
// an ordered list of human-readable messages; an empty list means the
// candidate is valid. The message order is fixed and follows the field
// order of the entry forms.
package validation

import (
	"strings"
	"time"

	"health-tracker/internal/domain/entity"
)

// Op distinguishes creating a new entity from editing an existing one. The
// appointment future-instant rule only applies on create.
type Op int

const (
	OpCreate Op = iota
	OpEdit
)

const dateLayout = "2006-01-02"

// ValidateHealthRecord checks a candidate health record.
func ValidateHealthRecord(r *entity.HealthRecord) []string {
	var errs []string

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "Title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if r.Date == "" {
		errs = append(errs, "Date is required")
	}

	return errs
}

// ValidateMedication checks a candidate medication.
func ValidateMedication(m *entity.Medication) []string {
	var errs []string

	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, "Medication name is required")
	}
	if strings.TrimSpace(m.Dosage) == "" {
		errs = append(errs, "Dosage is required")
	}
	if strings.TrimSpace(m.Frequency) == "" {
		errs = append(errs, "Frequency is required")
	}
	if m.StartDate == "" {
		errs = append(errs, "Start date is required")
	}
	if strings.TrimSpace(m.PrescribedBy) == "" {
		errs = append(errs, "Prescribing doctor is required")
	}

	if m.EndDate != "" && m.StartDate != "" {
		start, errStart := time.Parse(dateLayout, m.StartDate)
		end, errEnd := time.Parse(dateLayout, m.EndDate)
		if errStart == nil && errEnd == nil && end.Before(start) {
			errs = append(errs, "End date cannot be earlier than start date")
		}
	}

	if m.Reminders && len(m.ReminderTimes) == 0 {
		errs = append(errs, "At least one reminder time is required when reminders are enabled")
	}

	return errs
}

// ValidateAppointment checks a candidate appointment. On create the
// combined date+time instant must be strictly in the future relative to
// now; edits skip that check.
func ValidateAppointment(a *entity.Appointment, op Op, now time.Time) []string {
	var errs []string

	if strings.TrimSpace(a.Title) == "" {
		errs = append(errs, "Appointment title is required")
	}
	if strings.TrimSpace(a.Doctor) == "" {
		errs = append(errs, "Doctor name is required")
	}
	if strings.TrimSpace(a.Location) == "" {
		errs = append(errs, "Location is required")
	}
	if a.Date == "" {
		errs = append(errs, "Date is required")
	}
	if a.Time == "" {
		errs = append(errs, "Time is required")
	}

	if op == OpCreate && a.Date != "" && a.Time != "" {
		if instant, ok := a.Instant(); ok && !instant.After(now) {
			errs = append(errs, "Appointment time must be in the future")
		}
	}

	return errs
}
