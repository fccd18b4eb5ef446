package tournament

import (
	"testing"

	"padel-americano/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderboard(t *testing.T) {
	players := []string{"Dora", "Ana", "Cruz", "Bea", "Eli"}
	games := map[string]int{"Ana": 3, "Bea": 2, "Cruz": 3, "Dora": 3, "Eli": 2}
	scores := map[string]int{"Ana": 40, "Bea": 40, "Cruz": 55, "Dora": 40, "Eli": 12}

	got := BuildLeaderboard(players, games, scores)

	want := []model.LeaderboardEntry{
		{Rank: 1, Player: "Cruz", GamesPlayed: 3, TotalScore: 55},
		{Rank: 2, Player: "Bea", GamesPlayed: 2, TotalScore: 40},
		{Rank: 2, Player: "Ana", GamesPlayed: 3, TotalScore: 40},
		{Rank: 2, Player: "Dora", GamesPlayed: 3, TotalScore: 40},
		{Rank: 5, Player: "Eli", GamesPlayed: 2, TotalScore: 12},
	}
	assert.Equal(t, want, got)
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, BuildLeaderboard(nil, nil, nil))
}
