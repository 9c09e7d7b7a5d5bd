package store

import "health-tracker/internal/domain/entity"

// AppointmentPatch is a partial update; nil fields are left unchanged.
type AppointmentPatch struct {
	Type      *entity.AppointmentType
	Title     *string
	Doctor    *string
	Location  *string
	Date      *string
	Time      *string
	Notes     *string
	Completed *bool
	Reminder  *bool
}

func (s *Store) AddAppointment(appointment entity.Appointment) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment.ID = newID()
	s.appointments = append(s.appointments, appointment)
	persistCollection(s, appointmentsKey, s.appointments)
	return appointment.ID
}

func (s *Store) UpdateAppointment(id string, patch AppointmentPatch) *entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		a := &s.appointments[i]
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Doctor != nil {
			a.Doctor = *patch.Doctor
		}
		if patch.Location != nil {
			a.Location = *patch.Location
		}
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Time != nil {
			a.Time = *patch.Time
		}
		if patch.Notes != nil {
			a.Notes = *patch.Notes
		}
		if patch.Completed != nil {
			a.Completed = *patch.Completed
		}
		if patch.Reminder != nil {
			a.Reminder = *patch.Reminder
		}
		persistCollection(s, appointmentsKey, s.appointments)
		updated := *a
		return &updated
	}
	return nil
}

func (s *Store) RemoveAppointment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.appointments[:0]
	removed := false
	for _, a := range s.appointments {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.appointments = kept
	if removed {
		persistCollection(s, appointmentsKey, s.appointments)
	}
}

func (s *Store) Appointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.Appointment, len(s.appointments))
	copy(snapshot, s.appointments)
	return snapshot
}

func (s *Store) AppointmentByID(id string) (*entity.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			appointment := s.appointments[i]
			return &appointment, true
		}
	}
	return nil, false
}
