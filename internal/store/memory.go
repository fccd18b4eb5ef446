package store

import (
	"sync"
	"time"

	"padel-americano/internal/model"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu         sync.RWMutex
	tournament *model.Tournament
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetTournament() (model.Tournament, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tournament == nil {
		return model.Tournament{}, false
	}
	return s.tournament.Clone(), true
}

func (s *MemoryStore) SaveTournament(tournament model.Tournament) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.StartedAt.IsZero() {
		tournament.StartedAt = time.Now()
	}
	stored := tournament.Clone()
	s.tournament = &stored
	return stored.Clone(), nil
}

// UpdateTournament applies fn to a copy of the stored tournament and keeps
// the result only when fn succeeds.
func (s *MemoryStore) UpdateTournament(fn func(t *model.Tournament) error) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tournament == nil {
		return model.Tournament{}, ErrNotFound
	}
	working := s.tournament.Clone()
	if err := fn(&working); err != nil {
		return model.Tournament{}, err
	}
	s.tournament = &working
	return working.Clone(), nil
}

func (s *MemoryStore) DeleteTournament() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tournament = nil
}
