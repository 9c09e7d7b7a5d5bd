package entity

// Medication is a prescribed or over-the-counter medication the user tracks.
// StartDate and EndDate are ISO calendar dates; EndDate may be empty for
// open-ended prescriptions. ReminderTimes holds HH:MM times of day and must
// be non-empty whenever Reminders is set.
type Medication struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate,omitempty"`
	PrescribedBy  string   `json:"prescribedBy"`
	Instructions  string   `json:"instructions"`
	Reminders     bool     `json:"reminders"`
	ReminderTimes []string `json:"reminderTimes"`
	IsActive      bool     `json:"isActive"`
}
