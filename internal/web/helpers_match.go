package web

import (
	"strings"

	"padel-americano/internal/model"
	"padel-americano/internal/tournament"
)

// scoreValue accepts a JSON number or string. Anything that does not parse
// as a non-negative integer becomes zero.
type scoreValue int

func (v *scoreValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.TrimPrefix(strings.TrimSuffix(raw, `"`), `"`)
	*v = scoreValue(tournament.ParseScore(raw))
	return nil
}

type scoreInput struct {
	MatchID string     `json:"match_id"`
	TeamA   scoreValue `json:"team_a"`
	TeamB   scoreValue `json:"team_b"`
}

func parseScores(inputs []scoreInput) []model.MatchScore {
	scores := make([]model.MatchScore, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.MatchID)
		if id == "" {
			continue
		}
		scores = append(scores, model.MatchScore{MatchID: id, A: int(in.TeamA), B: int(in.TeamB)})
	}
	return scores
}
