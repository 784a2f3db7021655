package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"gridiron/contexts/league-data/player-service/domain/entities"
	domainerrors "gridiron/contexts/league-data/player-service/domain/errors"
)

// Store is the in-memory adapter behind every player-service port. It also
// stands in for the external feeds so the module can run without network
// access in tests and local development.
type Store struct {
	mu sync.RWMutex

	players     map[string]entities.Player
	week        entities.WeekDescriptor
	games       map[string]entities.Game
	statLines   map[string]entities.StatLine
	projections map[string]map[entities.ScoringFormat]float64

	now      time.Time
	failSave bool
	saveErr  error
}

func NewStore(seed []entities.Player) *Store {
	players := make(map[string]entities.Player, len(seed))
	for _, player := range seed {
		players[player.PlayerID] = player
	}
	return &Store{
		players:     players,
		games:       make(map[string]entities.Game),
		statLines:   make(map[string]entities.StatLine),
		projections: make(map[string]map[entities.ScoringFormat]float64),
		now:         time.Now().UTC(),
	}
}

func (s *Store) SetWeek(week entities.WeekDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.week = week
}

func (s *Store) SetGame(game entities.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[strings.TrimSpace(game.GameID)] = game
}

func (s *Store) SetStatLine(line entities.StatLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statLines[strings.TrimSpace(line.PlayerID)] = line
}

func (s *Store) SetProjection(playerID string, points map[entities.ScoringFormat]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projections[strings.TrimSpace(playerID)] = points
}

func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailNextSaves makes every subsequent SavePlayers call return err, for
// exercising partial-batch failure paths.
func (s *Store) FailNextSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSave = err != nil
	s.saveErr = err
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *Store) SavePlayer(_ context.Context, player entities.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return s.saveErr
	}
	s.players[strings.TrimSpace(player.PlayerID)] = player
	return nil
}

func (s *Store) SavePlayers(ctx context.Context, players []entities.Player) error {
	for _, player := range players {
		if err := s.SavePlayer(ctx, player); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetPlayer(_ context.Context, playerID string) (entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[strings.TrimSpace(playerID)]
	if !ok {
		return entities.Player{}, domainerrors.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Store) ListByPosition(_ context.Context, position entities.Position) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []entities.Player
	for _, player := range s.players {
		if player.Position == position {
			players = append(players, player)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].PlayerID < players[j].PlayerID
	})
	return players, nil
}

func (s *Store) ListAll(_ context.Context) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]entities.Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].PlayerID < players[j].PlayerID
	})
	return players, nil
}

func (s *Store) CurrentWeek(_ context.Context) (entities.WeekDescriptor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.week, nil
}

func (s *Store) WeekSchedule(_ context.Context, week int) ([]entities.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []entities.Game
	for _, game := range s.games {
		if game.Week == week {
			games = append(games, game)
		}
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].GameID < games[j].GameID
	})
	return games, nil
}

func (s *Store) WeekStats(_ context.Context, week int) ([]entities.StatLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lines []entities.StatLine
	for _, line := range s.statLines {
		if line.Week == week {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].PlayerID < lines[j].PlayerID
	})
	return lines, nil
}

func (s *Store) Projections(_ context.Context) (map[string]map[entities.ScoringFormat]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]map[entities.ScoringFormat]float64, len(s.projections))
	for playerID, points := range s.projections {
		copied := make(map[entities.ScoringFormat]float64, len(points))
		for format, value := range points {
			copied[format] = value
		}
		out[playerID] = copied
	}
	return out, nil
}
