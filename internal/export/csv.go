package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// buildCSV writes one flat blob with a titled section per included data
// set. Rows go through encoding/csv so comma-bearing fields come out
// double-quoted and survive a standard CSV parser.
func buildCSV(snap Snapshot, sel Selection) ([]byte, error) {
	var buf bytes.Buffer

	if sel.Profile && snap.Profile != nil {
		p := newProfileSection(snap.Profile)
		if err := writeSection(&buf, "Profile Information", nil, [][]string{
			{"name", p.Name},
			{"email", p.Email},
			{"role", p.Role},
			{"dateOfBirth", p.DateOfBirth},
			{"phone", p.Phone},
			{"emergencyContact", p.EmergencyContact},
			{"memberSince", p.MemberSince},
		}); err != nil {
			return nil, err
		}
	}

	if sel.Records && len(snap.Records) > 0 {
		header := []string{"Type", "Title", "Description", "Date", "Doctor", "Severity", "Value", "Unit", "Notes"}
		rows := make([][]string, 0, len(snap.Records))
		for _, r := range snap.Records {
			rows = append(rows, []string{
				string(r.Type), r.Title, r.Description, r.Date,
				r.Doctor, string(r.Severity), r.Value, r.Unit, r.Notes,
			})
		}
		if err := writeSection(&buf, "Health Records", header, rows); err != nil {
			return nil, err
		}
	}

	if sel.Medications && len(snap.Medications) > 0 {
		header := []string{"Name", "Dosage", "Frequency", "Start Date", "End Date", "Prescribed By", "Instructions", "Active", "Reminders"}
		rows := make([][]string, 0, len(snap.Medications))
		for _, m := range snap.Medications {
			rows = append(rows, []string{
				m.Name, m.Dosage, m.Frequency, m.StartDate, m.EndDate,
				m.PrescribedBy, m.Instructions,
				strconv.FormatBool(m.IsActive), strconv.FormatBool(m.Reminders),
			})
		}
		if err := writeSection(&buf, "Medications", header, rows); err != nil {
			return nil, err
		}
	}

	if sel.Appointments && len(snap.Appointments) > 0 {
		header := []string{"Type", "Title", "Doctor", "Location", "Date", "Time", "Notes", "Completed"}
		rows := make([][]string, 0, len(snap.Appointments))
		for _, a := range snap.Appointments {
			rows = append(rows, []string{
				string(a.Type), a.Title, a.Doctor, a.Location, a.Date, a.Time,
				a.Notes, strconv.FormatBool(a.Completed),
			})
		}
		if err := writeSection(&buf, "Appointments", header, rows); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func writeSection(buf *bytes.Buffer, title string, header []string, rows [][]string) error {
	buf.WriteString(title)
	buf.WriteByte('\n')

	w := csv.NewWriter(buf)
	if header != nil {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	buf.WriteByte('\n')
	return nil
}
