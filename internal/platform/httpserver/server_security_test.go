package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	playerservice "gridiron/contexts/league-data/player-service"
	matchupservice "gridiron/contexts/league-play/matchup-service"
	matchuphttp "gridiron/contexts/league-play/matchup-service/transport/http"
	rankingservice "gridiron/contexts/league-play/ranking-service"
)

func newTestServer() *Server {
	return New(
		rankingservice.NewInMemoryModule(nil, slog.Default()),
		matchupservice.NewInMemoryModule(nil, slog.Default()),
		playerservice.NewInMemoryModule(nil, slog.Default()),
		slog.Default(),
		":0",
	)
}

func TestRankingSessionRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/rankings/qb/ppr/session", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMatchupGetOrCreateRequiresUserHeader(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/matchups/opponent-1?format=ppr", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestMatchupGetOrCreateNormalizesPair(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/matchups/alice?format=ppr", nil)
	req.Header.Set("X-User-ID", "zed")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp matchuphttp.MatchupResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserAID != "alice" || resp.UserBID != "zed" {
		t.Fatalf("expected normalized pair alice/zed, got %s/%s", resp.UserAID, resp.UserBID)
	}
	if resp.Status != "pending" {
		t.Fatalf("expected pending matchup, got %s", resp.Status)
	}
}

func TestMatchupAgainstSelfIsRejected(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/matchups/alice?format=standard", nil)
	req.Header.Set("X-User-ID", "alice")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUnknownMatchupStateIsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/matchups/missing-id/state", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestPlayerListRejectsUnknownPosition(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/v1/players?position=goalie&format=ppr", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
