package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gridiron/contexts/league-play/matchup-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/matchup-service/domain/errors"
	"gridiron/contexts/league-play/matchup-service/ports"

	"github.com/google/uuid"
)

type pairKey struct {
	userAID string
	userBID string
	format  entities.ScoringFormat
}

type rankingKey struct {
	userID   string
	position entities.Position
	format   entities.ScoringFormat
}

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory adapter behind the matchup-service ports. It also
// carries ranking, snapshot and schedule projections so the module can run
// without its sibling contexts in tests.
type Store struct {
	mu sync.RWMutex

	matchups map[string]entities.Matchup
	byPair   map[pairKey]string
	outbox   map[string]outboxRecord

	rankings map[rankingKey][]string
	snapshot map[string]entities.PlayerView
	games    []entities.GameView
	week     int

	pendingStats map[string]entities.PlayerView
	refreshCount int

	failNextSaves int

	now time.Time
}

func NewStore(seed []entities.Matchup) *Store {
	matchups := make(map[string]entities.Matchup, len(seed))
	byPair := make(map[pairKey]string, len(seed))
	for _, matchup := range seed {
		matchups[matchup.MatchupID] = matchup
		byPair[pairKeyFor(matchup.UserAID, matchup.UserBID, matchup.Format)] = matchup.MatchupID
	}
	return &Store{
		matchups:     matchups,
		byPair:       byPair,
		outbox:       make(map[string]outboxRecord),
		rankings:     make(map[rankingKey][]string),
		snapshot:     make(map[string]entities.PlayerView),
		pendingStats: make(map[string]entities.PlayerView),
		week:         1,
		now:          time.Now().UTC(),
	}
}

func pairKeyFor(userAID, userBID string, format entities.ScoringFormat) pairKey {
	return pairKey{
		userAID: strings.TrimSpace(userAID),
		userBID: strings.TrimSpace(userBID),
		format:  format,
	}
}

func (s *Store) SetRanking(
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
	playerIDs []string,
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rankingKey{userID: strings.TrimSpace(userID), position: position, format: format}
	s.rankings[key] = append([]string(nil), playerIDs...)
}

func (s *Store) SetPlayerView(view entities.PlayerView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot[strings.TrimSpace(view.PlayerID)] = view
}

func (s *Store) SetGames(games []entities.GameView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append([]entities.GameView(nil), games...)
}

func (s *Store) SetWeek(week int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.week = week
}

// SetPendingStats stages a player view that only becomes visible after the
// next RefreshStats call, mimicking an external stat feed.
func (s *Store) SetPendingStats(view entities.PlayerView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingStats[strings.TrimSpace(view.PlayerID)] = view
}

func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailNextSaves makes the next n SaveMatchup calls fail.
func (s *Store) FailNextSaves(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextSaves = n
}

func (s *Store) RefreshCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshCount
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) SaveMatchup(_ context.Context, matchup entities.Matchup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNextSaves > 0 {
		s.failNextSaves--
		return errors.New("simulated save failure")
	}
	key := pairKeyFor(matchup.UserAID, matchup.UserBID, matchup.Format)
	if existingID, ok := s.byPair[key]; ok && existingID != matchup.MatchupID {
		return domainerrors.ErrMatchupKeyConflict
	}
	s.matchups[matchup.MatchupID] = matchup
	s.byPair[key] = matchup.MatchupID
	return nil
}

func (s *Store) GetMatchup(_ context.Context, matchupID string) (entities.Matchup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matchup, ok := s.matchups[strings.TrimSpace(matchupID)]
	if !ok {
		return entities.Matchup{}, domainerrors.ErrMatchupNotFound
	}
	return matchup, nil
}

func (s *Store) GetMatchupByPair(
	_ context.Context,
	userAID string,
	userBID string,
	format entities.ScoringFormat,
) (entities.Matchup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matchupID, ok := s.byPair[pairKeyFor(userAID, userBID, format)]
	if !ok {
		return entities.Matchup{}, domainerrors.ErrMatchupNotFound
	}
	return s.matchups[matchupID], nil
}

func (s *Store) ListActiveMatchups(_ context.Context) ([]entities.Matchup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Matchup, 0, len(s.matchups))
	for _, matchup := range s.matchups {
		if matchup.Status == entities.StatusActive {
			items = append(items, matchup)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) RankedIDs(
	_ context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := rankingKey{userID: strings.TrimSpace(userID), position: position, format: format}
	return append([]string(nil), s.rankings[key]...), nil
}

func (s *Store) Snapshot(_ context.Context) (map[string]entities.PlayerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entities.PlayerView, len(s.snapshot))
	for id, view := range s.snapshot {
		out[id] = view
	}
	return out, nil
}

func (s *Store) CurrentWeek(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week, nil
}

func (s *Store) CurrentWeekGames(_ context.Context) ([]entities.GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.GameView(nil), s.games...), nil
}

func (s *Store) RefreshStats(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCount++
	for id, view := range s.pendingStats {
		s.snapshot[id] = view
		delete(s.pendingStats, id)
	}
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, message ports.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	outboxID := strings.TrimSpace(message.OutboxID)
	if outboxID == "" {
		outboxID = uuid.NewString()
	}
	message.OutboxID = outboxID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	s.outbox[outboxID] = outboxRecord{message: message}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0, len(s.outbox))
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		items = append(items, row.message)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.outbox[strings.TrimSpace(outboxID)]
	if !ok {
		return domainerrors.ErrMatchupNotFound
	}
	row.published = true
	s.outbox[strings.TrimSpace(outboxID)] = row
	return nil
}
