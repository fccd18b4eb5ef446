package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"padel-americano/internal/tournament"
)

type envelope map[string]any

const maxBodyBytes = 1_048_576

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return fmt.Errorf("body contains unknown key %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		s.logger.Error("encode response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		s.logger.Warn("write response", slog.Any("error", err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message any) {
	s.writeJSON(w, status, envelope{"error": message})
}

func (s *Server) badRequestResponse(w http.ResponseWriter, err error) {
	s.errorResponse(w, http.StatusBadRequest, err.Error())
}

// serviceErrorResponse maps tournament errors onto HTTP statuses.
func (s *Server) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tournament.ErrNoTournament):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tournament.ErrNoActiveRound), errors.Is(err, tournament.ErrNoMatches):
		s.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, tournament.ErrUnknownMatch),
		errors.Is(err, tournament.ErrInvalidScore),
		errors.Is(err, tournament.ErrDuplicatePlayer),
		errors.Is(err, tournament.ErrInvalidCourts),
		errors.Is(err, tournament.ErrInvalidGamePoint),
		errors.Is(err, tournament.ErrInvalidMode):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("internal error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		s.errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
	}
}
