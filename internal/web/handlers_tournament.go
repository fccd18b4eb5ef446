package web

import (
	"net/http"

	"padel-americano/internal/model"
	"padel-americano/internal/scheduler"
	"padel-americano/internal/tournament"
)

type startRequest struct {
	Players     []string `json:"players"`
	PlayersText string   `json:"players_text"`
	Courts      *int     `json:"courts"`
	GamePoint   *int     `json:"game_point"`
	Mode        string   `json:"mode"`
}

func (s *Server) handleTournamentShow(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.Current()
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"tournament": tournamentView(t)})
}

func (s *Server) handleTournamentStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, err)
		return
	}
	players := req.Players
	if len(players) == 0 {
		players = tournament.ParsePlayers(req.PlayersText)
	}
	setup := tournament.Setup{
		Players:   players,
		Courts:    s.opts.DefaultCourts,
		GamePoint: s.opts.DefaultGamePoint,
		Mode:      s.opts.DefaultMode,
	}
	if req.Courts != nil {
		setup.Courts = *req.Courts
	}
	if req.GamePoint != nil {
		setup.GamePoint = *req.GamePoint
	}
	if req.Mode != "" {
		setup.Mode = model.FairnessMode(req.Mode)
	}

	t, err := s.service.Start(setup)
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, envelope{"tournament": tournamentView(t)})
}

func (s *Server) handleTournamentReset(w http.ResponseWriter, r *http.Request) {
	s.service.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := s.service.Leaderboard()
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"leaderboard": board})
}

type scheduleRequest struct {
	Roster      []string       `json:"roster"`
	GamesPlayed map[string]int `json:"games_played"`
	Courts      int            `json:"courts"`
	Rested      []string       `json:"rested"`
	Mode        string         `json:"mode"`
	Seed        *int64         `json:"seed"`
}

// handleSchedule exposes the scheduler on its own: the caller supplies the
// counters and nothing is stored.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, err)
		return
	}
	round, err := s.service.Schedule(scheduler.Request{
		Roster:      req.Roster,
		GamesPlayed: req.GamesPlayed,
		Courts:      req.Courts,
		Rested:      req.Rested,
	}, model.FairnessMode(req.Mode), req.Seed)
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"round": roundView(round)})
}
