package tournament

import (
	"sort"

	"padel-americano/internal/model"
)

// BuildLeaderboard orders players by total score (desc), games played
// (asc) and name. Players with equal scores share the best rank of the
// group.
func BuildLeaderboard(players []string, gamesPlayed, scores map[string]int) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		entries = append(entries, model.LeaderboardEntry{
			Player:      p,
			GamesPlayed: gamesPlayed[p],
			TotalScore:  scores[p],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore == entries[j].TotalScore {
			if entries[i].GamesPlayed == entries[j].GamesPlayed {
				return entries[i].Player < entries[j].Player
			}
			return entries[i].GamesPlayed < entries[j].GamesPlayed
		}
		return entries[i].TotalScore > entries[j].TotalScore
	})
	for i := range entries {
		if i > 0 && entries[i].TotalScore == entries[i-1].TotalScore {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries
}
