package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all keys in a single JSON file on disk. It is the default
// backend: a plain-file stand-in for browser local storage. Every Set
// rewrites the file through a temp-file rename so a crash never leaves a
// half-written store behind.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	// Unreadable content degrades to an empty store, same as absent data.
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err == nil {
		s.data = data
	}

	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush writes the whole map atomically. Caller holds the lock.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
