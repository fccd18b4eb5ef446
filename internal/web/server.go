package web

import (
	"log/slog"
	"net/http"

	"padel-americano/internal/model"
	"padel-americano/internal/tournament"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	DefaultCourts    int
	DefaultGamePoint int
	DefaultMode      model.FairnessMode
	Dev              bool
}

type Server struct {
	service *tournament.Service
	logger  *slog.Logger
	opts    Options
}

func NewServer(service *tournament.Service, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.DefaultCourts < 1 {
		opts.DefaultCourts = 1
	}
	return &Server{service: service, logger: logger, opts: opts}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Route("/api", func(r chi.Router) {
		r.Get("/tournament", s.handleTournamentShow)
		r.Post("/tournament", s.handleTournamentStart)
		r.Delete("/tournament", s.handleTournamentReset)
		r.Get("/rounds", s.handleRoundHistory)
		r.Get("/rounds/current", s.handleRoundCurrent)
		r.Post("/rounds/current/shuffle", s.handleRoundShuffle)
		r.Post("/rounds/current/complete", s.handleRoundComplete)
		r.Get("/leaderboard", s.handleLeaderboard)
		r.Post("/schedule", s.handleSchedule)
	})
	r.Post("/dev/demo", s.handleDevDemo)

	return r
}
