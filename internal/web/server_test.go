package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"padel-americano/internal/model"
	"padel-americano/internal/store"
	"padel-americano/internal/tournament"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tournamentBody struct {
	Tournament TournamentView `json:"tournament"`
}

type roundBody struct {
	Round RoundView `json:"round"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newTestServer(t *testing.T, opts Options) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := tournament.NewService(store.NewMemoryStore(), rand.New(rand.NewSource(1)), logger)
	return NewServer(svc, logger, opts).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, Options{})
	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTournamentNotStarted(t *testing.T) {
	h := newTestServer(t, Options{})

	for _, path := range []string{"/api/tournament", "/api/rounds/current", "/api/rounds", "/api/leaderboard"} {
		rec := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, tournament.ErrNoTournament.Error(), decode[errorBody](t, rec).Error)
	}
}

func TestStartTournament(t *testing.T) {
	h := newTestServer(t, Options{DefaultCourts: 1, DefaultGamePoint: 21})

	rec := do(t, h, http.MethodPost, "/api/tournament", `{"players_text":"A\nB\nC\nD\nE\nF\nG\nH\nI","courts":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode[tournamentBody](t, rec)
	assert.Len(t, body.Tournament.Players, 9)
	assert.Equal(t, 2, body.Tournament.Courts)
	assert.Equal(t, 21, body.Tournament.GamePoint)
	assert.Equal(t, string(model.FairnessBalanced), body.Tournament.Mode)
	require.NotNil(t, body.Tournament.CurrentRound)
	assert.Equal(t, 1, body.Tournament.CurrentRound.Number)
	assert.Len(t, body.Tournament.CurrentRound.Matches, 2)
	assert.Len(t, body.Tournament.CurrentRound.Resting, 1)
	assert.Contains(t, body.Tournament.CurrentRound.Matches[0].Label, " vs ")
}

func TestStartTournament_BadInput(t *testing.T) {
	h := newTestServer(t, Options{})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "malformed json", body: `{"players":`, status: http.StatusBadRequest},
		{name: "empty body", body: "", status: http.StatusBadRequest},
		{name: "unknown field", body: `{"players":["A"],"rounds":3}`, status: http.StatusBadRequest},
		{name: "duplicate players", body: `{"players":["A","B","a","C"]}`, status: http.StatusUnprocessableEntity},
		{name: "too many courts", body: `{"players":["A","B","C","D"],"courts":11}`, status: http.StatusUnprocessableEntity},
		{name: "unknown mode", body: `{"players":["A","B","C","D"],"mode":"chaos"}`, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/tournament", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[errorBody](t, rec).Error)
		})
	}
}

func TestRoundLifecycle(t *testing.T) {
	h := newTestServer(t, Options{DefaultCourts: 1, DefaultGamePoint: 21})

	rec := do(t, h, http.MethodPost, "/api/tournament", `{"players":["A","B","C","D","E","F","G","H"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/rounds/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[roundBody](t, rec).Round
	require.Len(t, first.Matches, 1)

	rec = do(t, h, http.MethodPost, "/api/rounds/current/shuffle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	shuffled := decode[roundBody](t, rec).Round
	assert.Equal(t, 1, shuffled.Number)
	match := shuffled.Matches[0]

	rec = do(t, h, http.MethodPost, "/api/rounds/current/complete",
		`{"scores":[{"match_id":"`+match.ID+`","team_a":"21","team_b":"oops"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[tournamentBody](t, rec)
	assert.Equal(t, 2, body.Tournament.CurrentRound.Number)
	assert.Equal(t, 1, body.Tournament.CompletedRounds)
	for _, p := range append(match.TeamA[:], match.TeamB[:]...) {
		assert.Equal(t, 1, body.Tournament.GamesPlayed[p])
	}

	rec = do(t, h, http.MethodGet, "/api/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[struct {
		Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
	}](t, rec).Leaderboard
	require.Len(t, board, 8)
	assert.ElementsMatch(t, match.TeamA[:], []string{board[0].Player, board[1].Player})
	assert.Equal(t, 21, board[0].TotalScore)
	assert.Equal(t, 1, board[1].Rank)

	rec = do(t, h, http.MethodGet, "/api/rounds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	history := decode[struct {
		Rounds []CompletedRoundView `json:"rounds"`
	}](t, rec).Rounds
	require.Len(t, history, 1)
	assert.Equal(t, []model.MatchScore{{MatchID: match.ID, A: 21, B: 0}}, history[0].Scores)

	rec = do(t, h, http.MethodDelete, "/api/tournament", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/tournament", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteRound_Errors(t *testing.T) {
	h := newTestServer(t, Options{})

	rec := do(t, h, http.MethodPost, "/api/tournament", `{"players":["A","B","C"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/rounds/current/complete", `{"scores":[]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/tournament", `{"players":["A","B","C","D"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	matchID := decode[tournamentBody](t, rec).Tournament.CurrentRound.Matches[0].ID
	rec = do(t, h, http.MethodPost, "/api/rounds/current/complete", `{"scores":[{"match_id":"missing","team_a":1,"team_b":2}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/rounds/current/complete", `{"scores":[{"match_id":"`+matchID+`","team_a":21,"team_b":21}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[errorBody](t, rec).Error, tournament.ErrInvalidScore.Error())

	rec = do(t, h, http.MethodGet, "/api/rounds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[map[string][]CompletedRoundView](t, rec)["rounds"])
}

func TestSchedule(t *testing.T) {
	h := newTestServer(t, Options{})
	body := `{"roster":["A","B","C","D","E","F","G","H","I"],"games_played":{"A":1,"B":1},"courts":2,"mode":"weighted","seed":7}`

	first := do(t, h, http.MethodPost, "/api/schedule", body)
	second := do(t, h, http.MethodPost, "/api/schedule", body)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())

	round := decode[roundBody](t, first).Round
	assert.Len(t, round.Matches, 2)
	assert.Len(t, round.Resting, 1)

	rec := do(t, h, http.MethodPost, "/api/schedule", `{"roster":["A","B","C"],"courts":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	small := decode[roundBody](t, rec).Round
	assert.Empty(t, small.Matches)
	assert.Equal(t, []string{"A", "B", "C"}, small.Resting)

	rec = do(t, h, http.MethodPost, "/api/schedule", `{"roster":["A","B","C","D"],"courts":1,"mode":"chaos"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDevDemo(t *testing.T) {
	rec := do(t, newTestServer(t, Options{}), http.MethodPost, "/dev/demo", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h := newTestServer(t, Options{Dev: true})
	rec = do(t, h, http.MethodPost, "/dev/demo?courts=3", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[tournamentBody](t, rec)
	assert.Len(t, body.Tournament.CurrentRound.Matches, 3)
	assert.Len(t, body.Tournament.CurrentRound.Resting, len(demoPlayers)-12)
}
