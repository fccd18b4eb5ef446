package web

import (
	"net/http"
)

type completeRequest struct {
	Scores []scoreInput `json:"scores"`
}

func (s *Server) handleRoundCurrent(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.Current()
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	if t.Current == nil {
		s.errorResponse(w, http.StatusConflict, "no active round")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"round": roundView(*t.Current)})
}

func (s *Server) handleRoundShuffle(w http.ResponseWriter, r *http.Request) {
	t, err := s.service.Reshuffle()
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"round": roundView(*t.Current)})
}

func (s *Server) handleRoundComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequestResponse(w, err)
		return
	}
	t, err := s.service.CompleteRound(parseScores(req.Scores))
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"tournament": tournamentView(t)})
}

func (s *Server) handleRoundHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.service.History()
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"rounds": historyView(history)})
}
