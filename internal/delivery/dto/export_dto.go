package dto

// ExportRequest selects the sections and format of a data export.
type ExportRequest struct {
	Format              string `json:"format" validate:"required,oneof=json csv pdf"`
	IncludeProfile      bool   `json:"includeProfile"`
	IncludeRecords      bool   `json:"includeRecords"`
	IncludeMedications  bool   `json:"includeMedications"`
	IncludeAppointments bool   `json:"includeAppointments"`
}
