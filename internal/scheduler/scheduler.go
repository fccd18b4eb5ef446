// Package scheduler builds the next round of an Americano tournament: it
// picks which players take the courts, pairs them into doubles teams and
// leaves the remainder resting, keeping games-played counts as even as
// the roster allows.
package scheduler

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"padel-americano/internal/model"
)

const PlayersPerMatch = 4

// Request is the full scheduler input. Rested lists players who sat out
// the previous round; balanced mode prefers them over players with the
// same games-played count.
type Request struct {
	Roster      []string
	GamesPlayed map[string]int
	Courts      int
	Rested      []string
}

// Scheduler is not safe for concurrent use: it owns a *rand.Rand.
type Scheduler struct {
	rng  *rand.Rand
	mode model.FairnessMode
}

func New(rng *rand.Rand, mode model.FairnessMode) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if mode == "" {
		mode = model.FairnessBalanced
	}
	return &Scheduler{rng: rng, mode: mode}
}

// NewSeeded returns a scheduler whose output is reproducible for a given
// seed and input.
func NewSeeded(seed int64, mode model.FairnessMode) *Scheduler {
	return New(rand.New(rand.NewSource(seed)), mode)
}

func (s *Scheduler) Mode() model.FairnessMode {
	return s.mode
}

// NextRound returns min(courts, len(roster)/4) matches and the players
// left resting. gamesPlayed is read only; entries missing from it count
// as zero. The returned round has no number and no match IDs.
func (s *Scheduler) NextRound(roster []string, gamesPlayed map[string]int, courts int) model.Round {
	return s.Plan(Request{Roster: roster, GamesPlayed: gamesPlayed, Courts: courts})
}

func (s *Scheduler) Plan(req Request) model.Round {
	players := uniquePlayers(req.Roster)
	round := model.Round{Matches: []model.Match{}, Resting: []string{}}

	count := MatchCount(len(players), req.Courts)
	if count == 0 {
		round.Resting = append(round.Resting, players...)
		return round
	}
	needed := count * PlayersPerMatch

	pool, limit := eligiblePool(players, req.GamesPlayed, needed)
	selected := s.selectPlayers(pool, limit, req.GamesPlayed, req.Rested, needed)
	s.rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })

	playing := make(map[string]bool, needed)
	for c := 0; c < count; c++ {
		group := selected[c*PlayersPerMatch : (c+1)*PlayersPerMatch]
		for _, p := range group {
			playing[p] = true
		}
		round.Matches = append(round.Matches, model.Match{
			Court: c + 1,
			TeamA: model.Team{Players: [2]string{group[0], group[1]}},
			TeamB: model.Team{Players: [2]string{group[2], group[3]}},
		})
	}
	for _, p := range players {
		if !playing[p] {
			round.Resting = append(round.Resting, p)
		}
	}
	return round
}

// MatchCount clamps the requested courts to what the roster can fill.
func MatchCount(players, courts int) int {
	if courts <= 0 {
		return 0
	}
	full := players / PlayersPerMatch
	if courts < full {
		return courts
	}
	return full
}

// eligiblePool returns the players within minPlayed+1 games, widening the
// cap one game at a time until at least needed players qualify. The cap
// the pool was cut at is returned with it.
func eligiblePool(players []string, gamesPlayed map[string]int, needed int) ([]string, int) {
	minPlayed, maxPlayed := playedRange(players, gamesPlayed)
	for limit := minPlayed + 1; ; limit++ {
		pool := make([]string, 0, len(players))
		for _, p := range players {
			if gamesPlayed[p] <= limit {
				pool = append(pool, p)
			}
		}
		if len(pool) >= needed || limit >= maxPlayed {
			return pool, limit
		}
	}
}

func (s *Scheduler) selectPlayers(pool []string, limit int, gamesPlayed map[string]int, rested []string, needed int) []string {
	candidates := append([]string(nil), pool...)
	s.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	switch s.mode {
	case model.FairnessUniform, model.FairnessWeighted:
		guaranteed, rest := splitBelow(candidates, gamesPlayed, limit)
		if len(guaranteed) >= needed {
			guaranteed, rest = nil, candidates
		}
		if s.mode == model.FairnessWeighted {
			rest = s.weightedOrder(rest, gamesPlayed)
		}
		return append(guaranteed, rest[:needed-len(guaranteed)]...)
	default:
		restedSet := make(map[string]bool, len(rested))
		for _, p := range rested {
			restedSet[p] = true
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			gi, gj := gamesPlayed[candidates[i]], gamesPlayed[candidates[j]]
			if gi != gj {
				return gi < gj
			}
			return restedSet[candidates[i]] && !restedSet[candidates[j]]
		})
		return candidates[:needed]
	}
}

// splitBelow separates players under the pool cap from those sitting on
// it. When the pool had to be widened, everyone under the cap fits in the
// round and only the top tier is sampled.
func splitBelow(candidates []string, gamesPlayed map[string]int, limit int) ([]string, []string) {
	below := make([]string, 0, len(candidates))
	atCap := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if gamesPlayed[p] < limit {
			below = append(below, p)
		} else {
			atCap = append(atCap, p)
		}
	}
	return below, atCap
}

// weightedOrder sorts candidates by an exponential-weight sampling key
// (u^(1/w), w = e^-(played-min)); taking a prefix is a weighted sample
// without replacement.
func (s *Scheduler) weightedOrder(candidates []string, gamesPlayed map[string]int) []string {
	minPlayed, _ := playedRange(candidates, gamesPlayed)
	type keyed struct {
		name string
		key  float64
	}
	items := make([]keyed, 0, len(candidates))
	for _, p := range candidates {
		weight := math.Exp(-float64(gamesPlayed[p] - minPlayed))
		items = append(items, keyed{name: p, key: math.Pow(s.rng.Float64(), 1/weight)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key > items[j].key })

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}

func playedRange(players []string, gamesPlayed map[string]int) (int, int) {
	if len(players) == 0 {
		return 0, 0
	}
	minPlayed, maxPlayed := math.MaxInt, math.MinInt
	for _, p := range players {
		g := gamesPlayed[p]
		if g < minPlayed {
			minPlayed = g
		}
		if g > maxPlayed {
			maxPlayed = g
		}
	}
	return minPlayed, maxPlayed
}

func uniquePlayers(roster []string) []string {
	seen := make(map[string]bool, len(roster))
	out := make([]string, 0, len(roster))
	for _, p := range roster {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
