package dto

// Request DTOs

type CreateAppointmentRequest struct {
	Type     string `json:"type" validate:"required,oneof=checkup specialist emergency follow-up vaccination"`
	Title    string `json:"title"`
	Doctor   string `json:"doctor"`
	Location string `json:"location"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time" validate:"omitempty,datetime=15:04"`
	Notes    string `json:"notes"`
	Reminder bool   `json:"reminder"`
}

type UpdateAppointmentRequest struct {
	Type      string `json:"type" validate:"required,oneof=checkup specialist emergency follow-up vaccination"`
	Title     string `json:"title"`
	Doctor    string `json:"doctor"`
	Location  string `json:"location"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      string `json:"time" validate:"omitempty,datetime=15:04"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
	Reminder  bool   `json:"reminder"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Doctor    string `json:"doctor"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
	Reminder  bool   `json:"reminder"`
	Overdue   bool   `json:"overdue"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Upcoming     int                   `json:"upcoming"`
	Today        int                   `json:"today"`
	Completed    int                   `json:"completed"`
}
