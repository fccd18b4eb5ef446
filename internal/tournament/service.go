package tournament

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"padel-americano/internal/model"
	"padel-americano/internal/scheduler"
	"padel-americano/internal/store"

	"github.com/google/uuid"
)

const (
	MaxCourts        = 10
	DefaultGamePoint = 21
)

type Setup struct {
	Players   []string
	Courts    int
	GamePoint int
	Mode      model.FairnessMode
}

// Service owns the tournament lifecycle: it is the only caller that
// increments games-played, and it does so when a round is completed.
type Service struct {
	store  store.Store
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewService(st store.Store, rng *rand.Rand, logger *slog.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger, rng: rng, now: time.Now}
}

// Start replaces any running tournament and schedules round 1.
func (s *Service) Start(setup Setup) (model.Tournament, error) {
	players := normalizePlayers(setup.Players)
	if err := checkUnique(players); err != nil {
		return model.Tournament{}, err
	}
	if setup.Courts < 1 || setup.Courts > MaxCourts {
		return model.Tournament{}, ErrInvalidCourts
	}
	gamePoint := setup.GamePoint
	if gamePoint == 0 {
		gamePoint = DefaultGamePoint
	}
	if gamePoint < 0 {
		return model.Tournament{}, ErrInvalidGamePoint
	}
	mode, ok := model.ParseFairnessMode(string(setup.Mode))
	if !ok {
		return model.Tournament{}, fmt.Errorf("%w: %q", ErrInvalidMode, setup.Mode)
	}

	t := model.Tournament{
		Players:     players,
		Courts:      setup.Courts,
		GamePoint:   gamePoint,
		Mode:        mode,
		GamesPlayed: make(map[string]int, len(players)),
		Scores:      make(map[string]int, len(players)),
		History:     []model.CompletedRound{},
		StartedAt:   s.now(),
	}
	for _, p := range players {
		t.GamesPlayed[p] = 0
		t.Scores[p] = 0
	}
	round := s.plan(t, nil)
	round.Number = 1
	t.Current = &round

	saved, err := s.store.SaveTournament(t)
	if err != nil {
		return model.Tournament{}, fmt.Errorf("save tournament: %w", err)
	}
	s.logger.Info("tournament started",
		slog.String("tournament_id", saved.ID),
		slog.Int("players", len(players)),
		slog.Int("courts", saved.Courts),
		slog.String("mode", string(saved.Mode)),
		slog.Int("matches", len(round.Matches)),
	)
	return saved, nil
}

func (s *Service) Current() (model.Tournament, error) {
	t, ok := s.store.GetTournament()
	if !ok {
		return model.Tournament{}, ErrNoTournament
	}
	return t, nil
}

// Reshuffle draws the current round again. Counters are untouched because
// the round was never completed.
func (s *Service) Reshuffle() (model.Tournament, error) {
	t, err := s.update(func(t *model.Tournament) error {
		if t.Current == nil {
			return ErrNoActiveRound
		}
		round := s.plan(*t, lastResting(*t))
		round.Number = t.Current.Number
		t.Current = &round
		return nil
	})
	if err != nil {
		return model.Tournament{}, err
	}
	s.logger.Info("round reshuffled", slog.String("tournament_id", t.ID), slog.Int("round", t.Current.Number))
	return t, nil
}

// CompleteRound records scores for the current round, credits each player
// with one game and their team's points, and schedules the next round.
// Matches without an entry score 0-0; scores above the game point are
// clamped. A pair where both teams reached game point minus one is
// rejected and the round stays open.
func (s *Service) CompleteRound(scores []model.MatchScore) (model.Tournament, error) {
	var completed int
	t, err := s.update(func(t *model.Tournament) error {
		if t.Current == nil {
			return ErrNoActiveRound
		}
		current := *t.Current
		if len(current.Matches) == 0 {
			return ErrNoMatches
		}

		byMatch := make(map[string]model.MatchScore, len(scores))
		for _, sc := range scores {
			byMatch[sc.MatchID] = sc
		}
		for id := range byMatch {
			if !hasMatch(current, id) {
				return fmt.Errorf("%w: %s", ErrUnknownMatch, id)
			}
		}

		recorded := make([]model.MatchScore, 0, len(current.Matches))
		for _, m := range current.Matches {
			sc := byMatch[m.ID]
			a := ClampScore(sc.A, t.GamePoint)
			b := ClampScore(sc.B, t.GamePoint)
			if !ValidScore(a, b, t.GamePoint) {
				return fmt.Errorf("%w: match %s scored %d-%d", ErrInvalidScore, m.ID, a, b)
			}
			for _, p := range m.TeamA.Players {
				t.Scores[p] += a
				t.GamesPlayed[p]++
			}
			for _, p := range m.TeamB.Players {
				t.Scores[p] += b
				t.GamesPlayed[p]++
			}
			recorded = append(recorded, model.MatchScore{MatchID: m.ID, A: a, B: b})
		}
		t.History = append(t.History, model.CompletedRound{
			Round:       current,
			Scores:      recorded,
			CompletedAt: s.now(),
		})

		next := s.plan(*t, current.Resting)
		next.Number = current.Number + 1
		t.Current = &next
		completed = current.Number
		return nil
	})
	if err != nil {
		return model.Tournament{}, err
	}
	s.logger.Info("round completed",
		slog.String("tournament_id", t.ID),
		slog.Int("round", completed),
		slog.Int("next_matches", len(t.Current.Matches)),
	)
	return t, nil
}

func (s *Service) Leaderboard() ([]model.LeaderboardEntry, error) {
	t, err := s.Current()
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(t.Players, t.GamesPlayed, t.Scores), nil
}

func (s *Service) History() ([]model.CompletedRound, error) {
	t, err := s.Current()
	if err != nil {
		return nil, err
	}
	return t.History, nil
}

func (s *Service) Reset() {
	s.store.DeleteTournament()
	s.logger.Info("tournament reset")
}

// Schedule runs the scheduler without touching tournament state.
func (s *Service) Schedule(req scheduler.Request, mode model.FairnessMode, seed *int64) (model.Round, error) {
	parsed, ok := model.ParseFairnessMode(string(mode))
	if !ok {
		return model.Round{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if seed != nil {
		return scheduler.NewSeeded(*seed, parsed).Plan(req), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return scheduler.New(s.rng, parsed).Plan(req), nil
}

func (s *Service) update(fn func(t *model.Tournament) error) (model.Tournament, error) {
	t, err := s.store.UpdateTournament(fn)
	if errors.Is(err, store.ErrNotFound) {
		return model.Tournament{}, ErrNoTournament
	}
	return t, err
}

func (s *Service) plan(t model.Tournament, rested []string) model.Round {
	s.mu.Lock()
	round := scheduler.New(s.rng, t.Mode).Plan(scheduler.Request{
		Roster:      t.Players,
		GamesPlayed: t.GamesPlayed,
		Courts:      t.Courts,
		Rested:      rested,
	})
	s.mu.Unlock()

	for i := range round.Matches {
		round.Matches[i].ID = uuid.NewString()
	}
	return round
}

func lastResting(t model.Tournament) []string {
	if len(t.History) == 0 {
		return nil
	}
	return t.History[len(t.History)-1].Round.Resting
}

func hasMatch(round model.Round, id string) bool {
	for _, m := range round.Matches {
		if m.ID == id {
			return true
		}
	}
	return false
}

func checkUnique(players []string) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		key := strings.ToLower(p)
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
		seen[key] = true
	}
	return nil
}
