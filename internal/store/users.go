package store

import (
	"encoding/json"

	"health-tracker/internal/domain/entity"
)

// CurrentUser reads the signed-in profile. An unparseable blob is dropped
// from storage and reads as signed-out.
func (s *Store) CurrentUser() (*entity.User, bool) {
	raw, ok, err := s.kv.Get(currentUserKey)
	if err != nil {
		s.log.Warnf("Failed to read current user: %+v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warnf("Discarding unparseable current user: %+v", err)
		_ = s.kv.Delete(currentUserKey)
		return nil, false
	}
	return &user, true
}

func (s *Store) SetCurrentUser(user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(currentUserKey, string(raw))
}

func (s *Store) ClearCurrentUser() {
	if err := s.kv.Delete(currentUserKey); err != nil {
		s.log.Warnf("Failed to clear current user: %+v", err)
	}
}

// RegisteredUsers returns every registered profile including its credential
// hash. Absent or unparseable data reads as no registrations.
func (s *Store) RegisteredUsers() []entity.StoredUser {
	raw, ok, err := s.kv.Get(usersKey)
	if err != nil {
		s.log.Warnf("Failed to read registered users: %+v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var users []entity.StoredUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warnf("Discarding unparseable registered users: %+v", err)
		return nil
	}
	return users
}

func (s *Store) SaveRegisteredUsers(users []entity.StoredUser) error {
	if users == nil {
		users = []entity.StoredUser{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.kv.Set(usersKey, string(raw))
}
