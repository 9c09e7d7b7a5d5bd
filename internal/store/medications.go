package store

import "health-tracker/internal/domain/entity"

// MedicationPatch is a partial update; nil fields are left unchanged.
type MedicationPatch struct {
	Name          *string
	Dosage        *string
	Frequency     *string
	StartDate     *string
	EndDate       *string
	PrescribedBy  *string
	Instructions  *string
	Reminders     *bool
	ReminderTimes *[]string
	IsActive      *bool
}

func (s *Store) AddMedication(medication entity.Medication) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	medication.ID = newID()
	s.medications = append(s.medications, medication)
	persistCollection(s, medicationsKey, s.medications)
	return medication.ID
}

func (s *Store) UpdateMedication(id string, patch MedicationPatch) *entity.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.medications {
		if s.medications[i].ID != id {
			continue
		}
		m := &s.medications[i]
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Dosage != nil {
			m.Dosage = *patch.Dosage
		}
		if patch.Frequency != nil {
			m.Frequency = *patch.Frequency
		}
		if patch.StartDate != nil {
			m.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			m.EndDate = *patch.EndDate
		}
		if patch.PrescribedBy != nil {
			m.PrescribedBy = *patch.PrescribedBy
		}
		if patch.Instructions != nil {
			m.Instructions = *patch.Instructions
		}
		if patch.Reminders != nil {
			m.Reminders = *patch.Reminders
		}
		if patch.ReminderTimes != nil {
			m.ReminderTimes = *patch.ReminderTimes
		}
		if patch.IsActive != nil {
			m.IsActive = *patch.IsActive
		}
		persistCollection(s, medicationsKey, s.medications)
		updated := *m
		return &updated
	}
	return nil
}

func (s *Store) RemoveMedication(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.medications[:0]
	removed := false
	for _, m := range s.medications {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	s.medications = kept
	if removed {
		persistCollection(s, medicationsKey, s.medications)
	}
}

func (s *Store) Medications() []entity.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Medication, len(s.medications))
	copy(snapshot, s.medications)
	return snapshot
}

func (s *Store) MedicationByID(id string) (*entity.Medication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.medications {
		if s.medications[i].ID == id {
			medication := s.medications[i]
			return &medication, true
		}
	}
	return nil, false
}
