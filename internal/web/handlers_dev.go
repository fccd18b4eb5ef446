package web

import (
	"net/http"
	"strconv"

	"padel-americano/internal/tournament"
)

var demoPlayers = []string{
	"Krystian", "Paweł", "Jacek", "Tomek", "Władek", "Damian", "Aneta",
	"Marek", "Kasia", "Ola", "Piotr", "Lena", "Bartek", "Ewa",
}

// handleDevDemo starts a tournament with a fixed roster. Only served when
// APP=dev.
func (s *Server) handleDevDemo(w http.ResponseWriter, r *http.Request) {
	if !s.opts.Dev {
		http.NotFound(w, r)
		return
	}
	courts := 2
	if raw := r.URL.Query().Get("courts"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "courts must be a number")
			return
		}
		courts = parsed
	}
	t, err := s.service.Start(tournament.Setup{
		Players:   demoPlayers,
		Courts:    courts,
		GamePoint: s.opts.DefaultGamePoint,
		Mode:      s.opts.DefaultMode,
	})
	if err != nil {
		s.serviceErrorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, envelope{"tournament": tournamentView(t)})
}
