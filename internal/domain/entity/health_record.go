package entity

// RecordType categorizes a health record
type RecordType string

const (
	RecordTypeAllergy     RecordType = "allergy"
	RecordTypeVital       RecordType = "vital"
	RecordTypeTreatment   RecordType = "treatment"
	RecordTypeVaccination RecordType = "vaccination"
	RecordTypeTest        RecordType = "test"
)

// Severity grades allergy and test findings
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// HealthRecord is a single entry in the personal health history.
// Date is an ISO calendar date (YYYY-MM-DD). Value and Unit are free-text
// and only meaningful for vital and test records.
type HealthRecord struct {
	ID          string     `json:"id"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Doctor      string     `json:"doctor,omitempty"`
	Severity    Severity   `json:"severity,omitempty"`
	Value       string     `json:"value,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}
