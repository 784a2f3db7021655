package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	matchuperrors "gridiron/contexts/league-play/matchup-service/domain/errors"
	matchuphttp "gridiron/contexts/league-play/matchup-service/transport/http"
)

func (s *Server) registerMatchupRoutes() {
	s.mux.HandleFunc("GET /v1/matchups/{opponent_id}", s.handleGetOrCreateMatchup)
	s.mux.HandleFunc("GET /v1/matchups/{matchup_id}/state", s.handleGetMatchup)
	s.mux.HandleFunc("PUT /v1/matchups/{matchup_id}/capacity", s.handleEditCapacity)
	s.mux.HandleFunc("POST /v1/matchups/{matchup_id}/confirm", s.handleConfirmMatchup)
	s.mux.HandleFunc("GET /v1/matchups/{matchup_id}/lineup", s.handleGetLineup)
}

func (s *Server) handleGetOrCreateMatchup(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeMatchupError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	req := matchuphttp.CreateMatchupRequest{
		OpponentID: r.PathValue("opponent_id"),
		Format:     r.URL.Query().Get("format"),
	}
	resp, err := s.matchups.Handler.GetOrCreateMatchupHandler(r.Context(), userID, req)
	if err != nil {
		writeMatchupDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMatchup(w http.ResponseWriter, r *http.Request) {
	resp, err := s.matchups.Handler.GetMatchupHandler(r.Context(), r.PathValue("matchup_id"))
	if err != nil {
		writeMatchupDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditCapacity(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeMatchupError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	var req matchuphttp.EditCapacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMatchupError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.matchups.Handler.EditCapacityHandler(
		r.Context(),
		userID,
		r.PathValue("matchup_id"),
		req,
	)
	if err != nil {
		writeMatchupDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConfirmMatchup(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeMatchupError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	resp, err := s.matchups.Handler.ConfirmMatchupHandler(r.Context(), userID, r.PathValue("matchup_id"))
	if err != nil {
		writeMatchupDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetLineup(w http.ResponseWriter, r *http.Request) {
	resp, err := s.matchups.Handler.GetLineupHandler(r.Context(), r.PathValue("matchup_id"))
	if err != nil {
		writeMatchupDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeMatchupDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, matchuperrors.ErrMatchupNotFound):
		writeMatchupError(w, http.StatusNotFound, "matchup_not_found", err.Error())
	case errors.Is(err, matchuperrors.ErrInvalidFormat),
		errors.Is(err, matchuperrors.ErrSelfMatchup),
		errors.Is(err, matchuperrors.ErrMalformedCapacity):
		writeMatchupError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, matchuperrors.ErrNotParticipant):
		writeMatchupError(w, http.StatusForbidden, "not_participant", err.Error())
	case errors.Is(err, matchuperrors.ErrMatchupFinal),
		errors.Is(err, matchuperrors.ErrMatchupNotActive),
		errors.Is(err, matchuperrors.ErrMatchupKeyConflict):
		writeMatchupError(w, http.StatusConflict, "matchup_state_conflict", err.Error())
	default:
		writeMatchupError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMatchupError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, matchuphttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
