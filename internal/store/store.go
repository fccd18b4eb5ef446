package store

import (
	"errors"

	"padel-americano/internal/model"
)

var ErrNotFound = errors.New("tournament not found")

// Store holds the single active tournament. UpdateTournament runs fn under
// the store's write lock, so a read-modify-write of the counters is atomic.
type Store interface {
	GetTournament() (model.Tournament, bool)
	SaveTournament(tournament model.Tournament) (model.Tournament, error)
	UpdateTournament(fn func(t *model.Tournament) error) (model.Tournament, error)
	DeleteTournament()
}
