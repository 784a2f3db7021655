package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	playerservice "gridiron/contexts/league-data/player-service"
	matchupservice "gridiron/contexts/league-play/matchup-service"
	rankingservice "gridiron/contexts/league-play/ranking-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "gridiron/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	rankings rankingservice.Module
	matchups matchupservice.Module
	players  playerservice.Module
}

func New(
	rankings rankingservice.Module,
	matchups matchupservice.Module,
	players playerservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		rankings: rankings,
		matchups: matchups,
		players:  players,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerRankingRoutes()
	s.registerMatchupRoutes()
	s.registerPlayerRoutes()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// resolveUserID reads the caller identity established upstream. Auth itself
// lives outside this process.
func resolveUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-ID"))
}
