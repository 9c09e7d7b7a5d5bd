package export

import (
	"bytes"
	"html/template"
	"time"
)

// buildHTML renders the print-ready document that stands in for the PDF
// export: header with exporter and date, one table per included section,
// closing privacy notice.
func buildHTML(snap Snapshot, sel Selection, now time.Time) ([]byte, error) {
	data := htmlDocument{
		ExportDate: now.Format("Jan 2, 2006"),
	}
	if snap.Profile != nil {
		data.ExportedBy = snap.Profile.Name
	}

	if sel.Profile && snap.Profile != nil {
		data.Profile = &htmlProfile{
			Name:             snap.Profile.Name,
			Email:            snap.Profile.Email,
			Role:             string(snap.Profile.Role),
			Phone:            orFallback(snap.Profile.Phone, "Not provided"),
			DateOfBirth:      orFallback(formatOptionalDate(snap.Profile.DateOfBirth), "Not provided"),
			EmergencyContact: orFallback(snap.Profile.EmergencyContact, "Not provided"),
		}
	}

	if sel.Records && len(snap.Records) > 0 {
		for _, r := range snap.Records {
			data.Records = append(data.Records, htmlRecordRow{
				Type:        string(r.Type),
				Title:       r.Title,
				Date:        displayDate(r.Date),
				Doctor:      orFallback(r.Doctor, "N/A"),
				Description: r.Description,
			})
		}
	}

	if sel.Medications && len(snap.Medications) > 0 {
		for _, m := range snap.Medications {
			status := "Inactive"
			if m.IsActive {
				status = "Active"
			}
			data.Medications = append(data.Medications, htmlMedicationRow{
				Name:         m.Name,
				Dosage:       m.Dosage,
				Frequency:    m.Frequency,
				PrescribedBy: "Dr. " + m.PrescribedBy,
				Status:       status,
			})
		}
	}

	if sel.Appointments && len(snap.Appointments) > 0 {
		for _, a := range snap.Appointments {
			status := "Scheduled"
			if a.Completed {
				status = "Completed"
			}
			data.Appointments = append(data.Appointments, htmlAppointmentRow{
				Title:    a.Title,
				Doctor:   "Dr. " + a.Doctor,
				Date:     displayDate(a.Date),
				Time:     a.Time,
				Location: a.Location,
				Status:   status,
			})
		}
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatOptionalDate(iso string) string {
	if iso == "" {
		return ""
	}
	return displayDate(iso)
}

type htmlDocument struct {
	ExportedBy   string
	ExportDate   string
	Profile      *htmlProfile
	Records      []htmlRecordRow
	Medications  []htmlMedicationRow
	Appointments []htmlAppointmentRow
}

type htmlProfile struct {
	Name             string
	Email            string
	Role             string
	Phone            string
	DateOfBirth      string
	EmergencyContact string
}

type htmlRecordRow struct {
	Type        string
	Title       string
	Date        string
	Doctor      string
	Description string
}

type htmlMedicationRow struct {
	Name         string
	Dosage       string
	Frequency    string
	PrescribedBy string
	Status       string
}

type htmlAppointmentRow struct {
	Title    string
	Doctor   string
	Date     string
	Time     string
	Location string
	Status   string
}

var documentTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Health Records Export</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
    .header { text-align: center; margin-bottom: 40px; border-bottom: 2px solid #333; padding-bottom: 20px; }
    .section { margin: 30px 0; }
    .section h2 { color: #2563EB; border-bottom: 1px solid #ddd; padding-bottom: 10px; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    th { background-color: #f8f9fa; font-weight: bold; }
    .profile-info { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
    .export-info { background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 30px; }
    @media print { body { margin: 20px; } }
  </style>
</head>
<body>
  <div class="header">
    <h1>Personal Health Records</h1>
    <p>Exported by: {{.ExportedBy}}</p>
    <p>Export Date: {{.ExportDate}}</p>
  </div>
{{- with .Profile}}
  <div class="section">
    <h2>Profile Information</h2>
    <div class="profile-info">
      <div><strong>Name:</strong> {{.Name}}</div>
      <div><strong>Email:</strong> {{.Email}}</div>
      <div><strong>Phone:</strong> {{.Phone}}</div>
      <div><strong>Date of Birth:</strong> {{.DateOfBirth}}</div>
      <div><strong>Emergency Contact:</strong> {{.EmergencyContact}}</div>
      <div><strong>Account Type:</strong> {{.Role}}</div>
    </div>
  </div>
{{- end}}
{{- if .Records}}
  <div class="section">
    <h2>Health Records ({{len .Records}} records)</h2>
    <table>
      <thead>
        <tr><th>Type</th><th>Title</th><th>Date</th><th>Doctor</th><th>Description</th></tr>
      </thead>
      <tbody>
{{- range .Records}}
        <tr><td style="text-transform: capitalize;">{{.Type}}</td><td>{{.Title}}</td><td>{{.Date}}</td><td>{{.Doctor}}</td><td>{{.Description}}</td></tr>
{{- end}}
      </tbody>
    </table>
  </div>
{{- end}}
{{- if .Medications}}
  <div class="section">
    <h2>Medications ({{len .Medications}} medications)</h2>
    <table>
      <thead>
        <tr><th>Name</th><th>Dosage</th><th>Frequency</th><th>Prescribed By</th><th>Status</th></tr>
      </thead>
      <tbody>
{{- range .Medications}}
        <tr><td>{{.Name}}</td><td>{{.Dosage}}</td><td>{{.Frequency}}</td><td>{{.PrescribedBy}}</td><td>{{.Status}}</td></tr>
{{- end}}
      </tbody>
    </table>
  </div>
{{- end}}
{{- if .Appointments}}
  <div class="section">
    <h2>Appointments ({{len .Appointments}} appointments)</h2>
    <table>
      <thead>
        <tr><th>Title</th><th>Doctor</th><th>Date</th><th>Time</th><th>Location</th><th>Status</th></tr>
      </thead>
      <tbody>
{{- range .Appointments}}
        <tr><td>{{.Title}}</td><td>{{.Doctor}}</td><td>{{.Date}}</td><td>{{.Time}}</td><td>{{.Location}}</td><td>{{.Status}}</td></tr>
{{- end}}
      </tbody>
    </table>
  </div>
{{- end}}
  <div class="export-info">
    <p><strong>Note:</strong> This document contains your personal health information. Please store it securely and share only with authorized healthcare providers.</p>
  </div>
</body>
</html>
`))
