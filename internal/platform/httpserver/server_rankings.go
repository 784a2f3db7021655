package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	rankingerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
	rankinghttp "gridiron/contexts/league-play/ranking-service/transport/http"
)

func (s *Server) registerRankingRoutes() {
	s.mux.HandleFunc("POST /v1/rankings/{position}/{format}/session", s.handleStartRankingSession)
	s.mux.HandleFunc("GET /v1/rankings/{position}/{format}/next-pair", s.handleGetRankingBoard)
	s.mux.HandleFunc("POST /v1/rankings/{position}/{format}/comparisons", s.handleSubmitComparison)
	s.mux.HandleFunc("POST /v1/rankings/{position}/{format}/promotion-duels", s.handleSubmitPromotionDuel)
	s.mux.HandleFunc("POST /v1/rankings/{position}/{format}/reset", s.handleResetRankingBoard)
	s.mux.HandleFunc("GET /v1/rankings/{position}/{format}", s.handleGetRankingBoard)
}

func (s *Server) handleStartRankingSession(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeRankingError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	resp, err := s.rankings.Handler.StartSessionHandler(
		r.Context(),
		userID,
		r.PathValue("position"),
		r.PathValue("format"),
	)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitComparison(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeRankingError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	var req rankinghttp.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRankingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.rankings.Handler.SubmitComparisonHandler(
		r.Context(),
		userID,
		r.PathValue("position"),
		r.PathValue("format"),
		req,
	)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitPromotionDuel(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeRankingError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	var req rankinghttp.PromotionDuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRankingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.rankings.Handler.SubmitPromotionDuelHandler(
		r.Context(),
		userID,
		r.PathValue("position"),
		r.PathValue("format"),
		req,
	)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResetRankingBoard(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeRankingError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	resp, err := s.rankings.Handler.ResetBoardHandler(
		r.Context(),
		userID,
		r.PathValue("position"),
		r.PathValue("format"),
	)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRankingBoard(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	if userID == "" {
		writeRankingError(w, http.StatusUnauthorized, "missing_user", "X-User-ID header is required")
		return
	}
	resp, err := s.rankings.Handler.GetBoardHandler(
		r.Context(),
		userID,
		r.PathValue("position"),
		r.PathValue("format"),
	)
	if err != nil {
		writeRankingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRankingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rankingerrors.ErrBoardNotFound):
		writeRankingError(w, http.StatusNotFound, "board_not_found", err.Error())
	case errors.Is(err, rankingerrors.ErrInvalidPosition),
		errors.Is(err, rankingerrors.ErrInvalidFormat):
		writeRankingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, rankingerrors.ErrUnknownPlayer):
		writeRankingError(w, http.StatusUnprocessableEntity, "unknown_player", err.Error())
	case errors.Is(err, rankingerrors.ErrNoOpenPromotion),
		errors.Is(err, rankingerrors.ErrPromotionMismatch):
		writeRankingError(w, http.StatusConflict, "promotion_conflict", err.Error())
	case errors.Is(err, rankingerrors.ErrEmptyPool):
		writeRankingError(w, http.StatusUnprocessableEntity, "empty_pool", err.Error())
	default:
		writeRankingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRankingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rankinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
