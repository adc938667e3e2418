package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/seifeddine26/peer_learn/bookingflow"
	"github.com/seifeddine26/peer_learn/models"
)

const KeyBookedSessions = "bookedSessions"

var profileKeys = []string{
	bookingflow.KeyUserName,
	bookingflow.KeyUserEmail,
	bookingflow.KeyUserRoles,
	bookingflow.KeyUserSubjects,
}

// Store is a JSON file keyed like the original browser storage: one
// flat map of string keys, with bookedSessions holding a JSON-encoded
// array of session records. A missing file or key is a valid empty
// default, never an error. Single writer per browsing context is
// assumed; the mutex only guards this process.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) save(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Get returns "" for a missing key.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return "", err
	}
	return data[key], nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = value
	return s.save(data)
}

// Clear removes the profile keys, as logout does. Booked sessions
// survive a logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range profileKeys {
		delete(data, key)
	}
	return s.save(data)
}

// Append adds one session record to the bookedSessions array. It never
// rejects: no uniqueness or conflict constraint lives at this layer.
func (s *Store) Append(session models.BookedSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}
	sessions, err := decodeSessions(data[KeyBookedSessions])
	if err != nil {
		return err
	}
	sessions = append(sessions, session)
	encoded, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	data[KeyBookedSessions] = string(encoded)
	return s.save(data)
}

// ReadAll returns every appended session oldest first, empty when the
// key has never been written.
func (s *Store) ReadAll() ([]models.BookedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return nil, err
	}
	return decodeSessions(data[KeyBookedSessions])
}

func decodeSessions(raw string) ([]models.BookedSession, error) {
	if raw == "" {
		return []models.BookedSession{}, nil
	}
	var sessions []models.BookedSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

var _ bookingflow.SessionRepository = (*Store)(nil)
var _ bookingflow.ProfileStore = (*Store)(nil)
