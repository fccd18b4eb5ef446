package web

import (
	"time"

	"padel-americano/internal/model"
)

type TournamentView struct {
	ID              string         `json:"id"`
	Players         []string       `json:"players"`
	Courts          int            `json:"courts"`
	GamePoint       int            `json:"game_point"`
	Mode            string         `json:"mode"`
	GamesPlayed     map[string]int `json:"games_played"`
	CurrentRound    *RoundView     `json:"current_round"`
	CompletedRounds int            `json:"completed_rounds"`
	StartedAt       time.Time      `json:"started_at"`
}

type RoundView struct {
	Number  int         `json:"number"`
	Matches []MatchView `json:"matches"`
	Resting []string    `json:"resting"`
}

type MatchView struct {
	ID    string    `json:"id"`
	Court int       `json:"court"`
	TeamA [2]string `json:"team_a"`
	TeamB [2]string `json:"team_b"`
	Label string    `json:"label"`
}

type CompletedRoundView struct {
	RoundView
	Scores      []model.MatchScore `json:"scores"`
	CompletedAt time.Time          `json:"completed_at"`
}

func tournamentView(t model.Tournament) TournamentView {
	view := TournamentView{
		ID:              t.ID,
		Players:         t.Players,
		Courts:          t.Courts,
		GamePoint:       t.GamePoint,
		Mode:            string(t.Mode),
		GamesPlayed:     t.GamesPlayed,
		CompletedRounds: len(t.History),
		StartedAt:       t.StartedAt,
	}
	if t.Current != nil {
		round := roundView(*t.Current)
		view.CurrentRound = &round
	}
	return view
}

func roundView(r model.Round) RoundView {
	view := RoundView{
		Number:  r.Number,
		Matches: make([]MatchView, 0, len(r.Matches)),
		Resting: r.Resting,
	}
	if view.Resting == nil {
		view.Resting = []string{}
	}
	for _, m := range r.Matches {
		view.Matches = append(view.Matches, MatchView{
			ID:    m.ID,
			Court: m.Court,
			TeamA: m.TeamA.Players,
			TeamB: m.TeamB.Players,
			Label: m.TeamA.Label() + " vs " + m.TeamB.Label(),
		})
	}
	return view
}

func historyView(rounds []model.CompletedRound) []CompletedRoundView {
	views := make([]CompletedRoundView, 0, len(rounds))
	for _, h := range rounds {
		views = append(views, CompletedRoundView{
			RoundView:   roundView(h.Round),
			Scores:      h.Scores,
			CompletedAt: h.CompletedAt,
		})
	}
	return views
}
