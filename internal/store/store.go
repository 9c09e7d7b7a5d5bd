// Package store owns the three entity collections and keeps them
// synchronized with durable storage. Collections are loaded once at startup
// and every mutation rewrites the affected collection as a full JSON
// snapshot.
package store

import (
	"encoding/json"
	"sync"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/infrastructure/localstore"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Storage keys, one namespace per collection.
const (
	recordsKey      = "healthTracker_records"
	medicationsKey  = "healthTracker_medications"
	appointmentsKey = "healthTracker_appointments"
	currentUserKey  = "healthTracker_user"
	usersKey        = "healthTracker_users"
)

// Store holds the in-memory collections. Construct one at startup with New,
// call Load once, then pass the handle to whatever needs it.
type Store struct {
	kv  localstore.KV
	log *logrus.Logger

	mu           sync.RWMutex
	records      []entity.HealthRecord
	medications  []entity.Medication
	appointments []entity.Appointment
}

func New(kv localstore.KV, log *logrus.Logger) *Store {
	return &Store{
		kv:  kv,
		log: log,
	}
}

// Load reads all collections from durable storage. Absent or unparseable
// data degrades to an empty collection; Load never fails the caller.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = loadCollection[entity.HealthRecord](s, recordsKey)
	s.medications = loadCollection[entity.Medication](s, medicationsKey)
	s.appointments = loadCollection[entity.Appointment](s, appointmentsKey)
}

func loadCollection[T any](s *Store, key string) []T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warnf("Failed to read %s from storage: %+v", key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warnf("Discarding unparseable data under %s: %+v", key, err)
		return nil
	}
	return items
}

// persistCollection rewrites a whole collection under its key. Write errors
// are logged, not surfaced: storage is local and the in-memory state stays
// authoritative for the session.
func persistCollection[T any](s *Store, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Errorf("Failed to encode %s: %+v", key, err)
		return
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		s.log.Errorf("Failed to persist %s: %+v", key, err)
	}
}

func newID() string {
	return uuid.NewString()
}
