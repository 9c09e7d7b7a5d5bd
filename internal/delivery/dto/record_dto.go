package dto

// Request DTOs

type CreateHealthRecordRequest struct {
	Type        string `json:"type" validate:"required,oneof=allergy vital treatment vaccination test"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Doctor      string `json:"doctor"`
	Severity    string `json:"severity" validate:"omitempty,oneof=low medium high"`
	Value       string `json:"value"`
	Unit        string `json:"unit"`
	Notes       string `json:"notes"`
}

// UpdateHealthRecordRequest carries the full field set of the edit form;
// required-ness is enforced by the domain rules, not tags.
type UpdateHealthRecordRequest = CreateHealthRecordRequest

// Response DTOs

type HealthRecordResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Doctor      string `json:"doctor,omitempty"`
	Severity    string `json:"severity,omitempty"`
	Value       string `json:"value,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}
