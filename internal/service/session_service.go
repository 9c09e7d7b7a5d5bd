package service

import "sync"

// SessionService is the in-memory registry of live session tokens. There is
// only one logical user session, but logout must invalidate an issued token
// before it expires, so the middleware checks membership here.
type SessionService struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewSessionService() *SessionService {
	return &SessionService{
		active: make(map[string]struct{}),
	}
}

func (s *SessionService) Activate(tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[tokenID] = struct{}{}
}

func (s *SessionService) Revoke(tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, tokenID)
}

func (s *SessionService) IsActive(tokenID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[tokenID]
	return ok
}
