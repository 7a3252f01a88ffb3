package preferences

import (
	"sync"

	"github.com/selivandex/news-agent/pkg/models"
)

// Store holds per-user preferences in memory. Empty at process start;
// resubmission overwrites the previous record; entries never expire.
type Store struct {
	mu    sync.RWMutex
	byUID map[string]models.Preferences
}

// NewStore creates an empty preference store
func NewStore() *Store {
	return &Store{
		byUID: make(map[string]models.Preferences),
	}
}

// Set stores preferences for a user, replacing any previous record
func (s *Store) Set(prefs models.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUID[prefs.UserID] = prefs
}

// Get returns the stored preferences for a user
func (s *Store) Get(userID string) (models.Preferences, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefs, ok := s.byUID[userID]
	return prefs, ok
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUID)
}
