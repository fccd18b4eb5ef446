package model

import (
	"strings"
	"time"
)

type FairnessMode string

const (
	FairnessBalanced FairnessMode = "balanced"
	FairnessUniform  FairnessMode = "uniform"
	FairnessWeighted FairnessMode = "weighted"
)

// ParseFairnessMode maps user input onto a known mode. Empty input selects
// the balanced mode.
func ParseFairnessMode(value string) (FairnessMode, bool) {
	switch FairnessMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", FairnessBalanced:
		return FairnessBalanced, true
	case FairnessUniform:
		return FairnessUniform, true
	case FairnessWeighted:
		return FairnessWeighted, true
	}
	return "", false
}

type Team struct {
	Players [2]string `json:"players"`
}

func (t Team) Label() string {
	return t.Players[0] + " & " + t.Players[1]
}

type Match struct {
	ID    string `json:"id"`
	Court int    `json:"court"`
	TeamA Team   `json:"team_a"`
	TeamB Team   `json:"team_b"`
}

func (m Match) Players() []string {
	return []string{m.TeamA.Players[0], m.TeamA.Players[1], m.TeamB.Players[0], m.TeamB.Players[1]}
}

type Round struct {
	Number  int      `json:"number"`
	Matches []Match  `json:"matches"`
	Resting []string `json:"resting"`
}

type MatchScore struct {
	MatchID string `json:"match_id"`
	A       int    `json:"team_a"`
	B       int    `json:"team_b"`
}

type CompletedRound struct {
	Round       Round        `json:"round"`
	Scores      []MatchScore `json:"scores"`
	CompletedAt time.Time    `json:"completed_at"`
}

type Tournament struct {
	ID          string
	Players     []string
	Courts      int
	GamePoint   int
	Mode        FairnessMode
	GamesPlayed map[string]int
	Scores      map[string]int
	Current     *Round
	History     []CompletedRound
	StartedAt   time.Time
}

// Clone returns a copy that shares no maps or slices with t.
func (t Tournament) Clone() Tournament {
	out := t
	out.Players = append([]string(nil), t.Players...)
	out.GamesPlayed = make(map[string]int, len(t.GamesPlayed))
	for k, v := range t.GamesPlayed {
		out.GamesPlayed[k] = v
	}
	out.Scores = make(map[string]int, len(t.Scores))
	for k, v := range t.Scores {
		out.Scores[k] = v
	}
	if t.Current != nil {
		round := cloneRound(*t.Current)
		out.Current = &round
	}
	out.History = make([]CompletedRound, 0, len(t.History))
	for _, h := range t.History {
		out.History = append(out.History, CompletedRound{
			Round:       cloneRound(h.Round),
			Scores:      append([]MatchScore(nil), h.Scores...),
			CompletedAt: h.CompletedAt,
		})
	}
	return out
}

func cloneRound(r Round) Round {
	return Round{
		Number:  r.Number,
		Matches: append([]Match(nil), r.Matches...),
		Resting: append([]string(nil), r.Resting...),
	}
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Player      string `json:"player"`
	GamesPlayed int    `json:"games_played"`
	TotalScore  int    `json:"total_score"`
}
