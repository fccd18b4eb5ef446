package tournament

import "errors"

var (
	ErrNoTournament     = errors.New("no tournament in progress")
	ErrNoActiveRound    = errors.New("no active round")
	ErrNoMatches        = errors.New("current round has no matches")
	ErrUnknownMatch     = errors.New("match is not part of the current round")
	ErrDuplicatePlayer  = errors.New("player names must be unique")
	ErrInvalidCourts    = errors.New("courts must be between 1 and 10")
	ErrInvalidGamePoint = errors.New("game point must be positive")
	ErrInvalidMode      = errors.New("unknown fairness mode")
	ErrInvalidScore     = errors.New("teams cannot both reach game point minus one")
)
