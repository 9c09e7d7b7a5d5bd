package entity

import "time"

// AppointmentType categorizes an appointment
type AppointmentType string

const (
	AppointmentTypeCheckup     AppointmentType = "checkup"
	AppointmentTypeSpecialist  AppointmentType = "specialist"
	AppointmentTypeEmergency   AppointmentType = "emergency"
	AppointmentTypeFollowUp    AppointmentType = "follow-up"
	AppointmentTypeVaccination AppointmentType = "vaccination"
)

// Appointment is a scheduled visit. Date (YYYY-MM-DD) and Time (HH:MM)
// combine into the appointment instant.
type Appointment struct {
	ID        string          `json:"id"`
	Type      AppointmentType `json:"type"`
	Title     string          `json:"title"`
	Doctor    string          `json:"doctor"`
	Location  string          `json:"location"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Notes     string          `json:"notes,omitempty"`
	Completed bool            `json:"completed"`
	Reminder  bool            `json:"reminder"`
}

const instantLayout = "2006-01-02T15:04"

// Instant combines Date and Time into a point in time in the local zone.
// The second return is false when either part does not parse.
func (a *Appointment) Instant() (time.Time, bool) {
	t, err := time.ParseInLocation(instantLayout, a.Date+"T"+a.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
