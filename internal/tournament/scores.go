package tournament

import (
	"strconv"
	"strings"
)

// ParseScore converts a score field into points. Anything that is not a
// non-negative integer counts as zero so one bad field does not block the
// round.
func ParseScore(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func ClampScore(score, gamePoint int) int {
	if score < 0 {
		return 0
	}
	if gamePoint > 0 && score > gamePoint {
		return gamePoint
	}
	return score
}

// ValidScore reports whether a clamped pair can occur on court. A team only
// scores while the other is below gamePoint-1, so the lower of the two
// never exceeds gamePoint-2.
func ValidScore(a, b, gamePoint int) bool {
	if gamePoint <= 0 {
		return true
	}
	return min(a, b) <= max(gamePoint-2, 0)
}

// ParsePlayers splits one-name-per-line input, trimming blanks.
func ParsePlayers(text string) []string {
	return normalizePlayers(strings.Split(text, "\n"))
}

func normalizePlayers(names []string) []string {
	players := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		players = append(players, name)
	}
	return players
}
