package store

import "health-tracker/internal/domain/entity"

// HealthRecordPatch is a partial update; nil fields are left unchanged.
type HealthRecordPatch struct {
	Type        *entity.RecordType
	Title       *string
	Description *string
	Date        *string
	Doctor      *string
	Severity    *entity.Severity
	Value       *string
	Unit        *string
	Notes       *string
}

// AddRecord assigns an identifier, appends the record and persists the
// collection. It returns the new identifier.
func (s *Store) AddRecord(record entity.HealthRecord) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = newID()
	s.records = append(s.records, record)
	persistCollection(s, recordsKey, s.records)
	return record.ID
}

// UpdateRecord merges the patch into the record with the given identifier.
// Unknown identifiers are a silent no-op.
func (s *Store) UpdateRecord(id string, patch HealthRecordPatch) *entity.HealthRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		r := &s.records[i]
		if patch.Type != nil {
			r.Type = *patch.Type
		}
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Description != nil {
			r.Description = *patch.Description
		}
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		if patch.Doctor != nil {
			r.Doctor = *patch.Doctor
		}
		if patch.Severity != nil {
			r.Severity = *patch.Severity
		}
		if patch.Value != nil {
			r.Value = *patch.Value
		}
		if patch.Unit != nil {
			r.Unit = *patch.Unit
		}
		if patch.Notes != nil {
			r.Notes = *patch.Notes
		}
		persistCollection(s, recordsKey, s.records)
		updated := *r
		return &updated
	}
	return nil
}

// RemoveRecord deletes by identifier; absent identifiers are a no-op.
func (s *Store) RemoveRecord(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	removed := false
	for _, r := range s.records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	if removed {
		persistCollection(s, recordsKey, s.records)
	}
}

// Records returns a snapshot copy of the collection in insertion order.
func (s *Store) Records() []entity.HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]entity.HealthRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// RecordByID looks a record up by identifier.
func (s *Store) RecordByID(id string) (*entity.HealthRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			record := s.records[i]
			return &record, true
		}
	}
	return nil, false
}
