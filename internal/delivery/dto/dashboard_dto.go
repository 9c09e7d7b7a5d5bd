package dto

// DashboardResponse is the landing-screen summary: headline counts, the
// next few appointments, the latest records and the active medications.
type DashboardResponse struct {
	Stats                DashboardStats         `json:"stats"`
	UpcomingAppointments []AppointmentResponse  `json:"upcomingAppointments"`
	RecentRecords        []HealthRecordResponse `json:"recentRecords"`
	ActiveMedications    []MedicationResponse   `json:"activeMedications"`
}

type DashboardStats struct {
	TotalRecords          int `json:"totalRecords"`
	ActiveMedications     int `json:"activeMedications"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
}
