package httpserver

import (
	"errors"
	"net/http"

	playererrors "gridiron/contexts/league-data/player-service/domain/errors"
	playerhttp "gridiron/contexts/league-data/player-service/transport/http"
)

func (s *Server) registerPlayerRoutes() {
	s.mux.HandleFunc("GET /v1/players", s.handleListPlayers)
	s.mux.HandleFunc("GET /v1/players/{player_id}", s.handleGetPlayer)
	s.mux.HandleFunc("GET /v1/week", s.handleCurrentWeek)
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.players.Handler.ListPlayersHandler(
		r.Context(),
		query.Get("position"),
		query.Get("format"),
	)
	if err != nil {
		writePlayerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	resp, err := s.players.Handler.GetPlayerHandler(r.Context(), r.PathValue("player_id"))
	if err != nil {
		writePlayerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	resp, err := s.players.Handler.CurrentWeekHandler(r.Context())
	if err != nil {
		writePlayerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePlayerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, playererrors.ErrPlayerNotFound):
		writePlayerError(w, http.StatusNotFound, "player_not_found", err.Error())
	case errors.Is(err, playererrors.ErrInvalidPosition),
		errors.Is(err, playererrors.ErrInvalidFormat),
		errors.Is(err, playererrors.ErrInvalidWeek):
		writePlayerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePlayerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePlayerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, playerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
