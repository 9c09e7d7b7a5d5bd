package dto

// Request DTOs

type CreateMedicationRequest struct {
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	StartDate     string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	PrescribedBy  string   `json:"prescribedBy"`
	Instructions  string   `json:"instructions"`
	Reminders     bool     `json:"reminders"`
	ReminderTimes []string `json:"reminderTimes" validate:"dive,datetime=15:04"`
	IsActive      bool     `json:"isActive"`
}

type UpdateMedicationRequest = CreateMedicationRequest

// Response DTOs

type MedicationResponse struct {
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

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
	Active      int                  `json:"active"`
	Inactive    int                  `json:"inactive"`
	Reminders   int                  `json:"reminders"`
}
