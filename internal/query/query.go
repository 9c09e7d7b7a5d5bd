// Package query derives filtered and sorted views over collection
// snapshots. Everything here is a pure function; snapshots are never
// mutated in place.
package query

import (
	"sort"
	"strings"
	"time"

	"health-tracker/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// Bucket is a temporal category for appointment listings.
type Bucket string

const (
	BucketAll      Bucket = "all"
	BucketUpcoming Bucket = "upcoming"
	BucketPast     Bucket = "past"
	BucketToday    Bucket = "today"
)

// Status filters medications by their active flag.
type Status string

const (
	StatusAll      Status = "all"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterRecords applies a case-insensitive search over title and
// description plus an exact record-type filter ("" or "all" disables it).
func FilterRecords(records []entity.HealthRecord, search, recordType string) []entity.HealthRecord {
	filtered := make([]entity.HealthRecord, 0, len(records))
	for _, r := range records {
		if !matches(search, r.Title, r.Description) {
			continue
		}
		if recordType != "" && recordType != "all" && string(r.Type) != recordType {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// FilterMedications applies a search over name and prescriber plus the
// active-status filter.
func FilterMedications(medications []entity.Medication, search string, status Status) []entity.Medication {
	filtered := make([]entity.Medication, 0, len(medications))
	for _, m := range medications {
		if !matches(search, m.Name, m.PrescribedBy) {
			continue
		}
		switch status {
		case StatusActive:
			if !m.IsActive {
				continue
			}
		case StatusInactive:
			if m.IsActive {
				continue
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// FilterAppointments applies a search over title and doctor plus a temporal
// bucket evaluated against now.
func FilterAppointments(appointments []entity.Appointment, search string, bucket Bucket, now time.Time) []entity.Appointment {
	today := now.Format(dateLayout)

	filtered := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if !matches(search, a.Title, a.Doctor) {
			continue
		}
		if !inBucket(&a, bucket, now, today) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func inBucket(a *entity.Appointment, bucket Bucket, now time.Time, today string) bool {
	switch bucket {
	case BucketUpcoming:
		if a.Completed {
			return false
		}
		instant, ok := a.Instant()
		return ok && !instant.Before(now)
	case BucketPast:
		if a.Completed {
			return true
		}
		instant, ok := a.Instant()
		return ok && instant.Before(now)
	case BucketToday:
		return a.Date == today
	default:
		return true
	}
}

// SortAppointments orders ascending by the combined date+time instant, the
// default listing order. Unparseable instants sort first.
func SortAppointments(appointments []entity.Appointment) []entity.Appointment {
	sorted := make([]entity.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].Instant()
		tj, _ := sorted[j].Instant()
		return ti.Before(tj)
	})
	return sorted
}

// RecentRecords orders descending by date and keeps the first n, the
// dashboard "recent records" view.
func RecentRecords(records []entity.HealthRecord, n int) []entity.HealthRecord {
	sorted := make([]entity.HealthRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := time.Parse(dateLayout, sorted[i].Date)
		dj, _ := time.Parse(dateLayout, sorted[j].Date)
		return dj.Before(di)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// UpcomingAppointments keeps uncompleted appointments dated today or later,
// ordered by date, truncated to the first n.
func UpcomingAppointments(appointments []entity.Appointment, now time.Time, n int) []entity.Appointment {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Completed {
			continue
		}
		date, err := time.ParseInLocation(dateLayout, a.Date, now.Location())
		if err != nil || date.Before(startOfDay) {
			continue
		}
		upcoming = append(upcoming, a)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})
	if len(upcoming) > n {
		upcoming = upcoming[:n]
	}
	return upcoming
}

// IsOverdue reports whether an uncompleted appointment's instant has
// passed. Display-only.
func IsOverdue(a *entity.Appointment, now time.Time) bool {
	if a.Completed {
		return false
	}
	instant, ok := a.Instant()
	return ok && instant.Before(now)
}

// AppointmentCounts are the list-screen summary figures.
type AppointmentCounts struct {
	Upcoming  int
	Today     int
	Completed int
}

func CountAppointments(appointments []entity.Appointment, now time.Time) AppointmentCounts {
	today := now.Format(dateLayout)

	var counts AppointmentCounts
	for _, a := range appointments {
		if inBucket(&a, BucketUpcoming, now, today) {
			counts.Upcoming++
		}
		if a.Date == today {
			counts.Today++
		}
		if a.Completed {
			counts.Completed++
		}
	}
	return counts
}

// MedicationCounts are the list-screen summary figures.
type MedicationCounts struct {
	Active        int
	Inactive      int
	WithReminders int
}

func CountMedications(medications []entity.Medication) MedicationCounts {
	var counts MedicationCounts
	for _, m := range medications {
		if m.IsActive {
			counts.Active++
		} else {
			counts.Inactive++
		}
		if m.Reminders {
			counts.WithReminders++
		}
	}
	return counts
}
