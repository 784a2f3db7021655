package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
	domainerrors "gridiron/contexts/league-play/ranking-service/domain/errors"
	"gridiron/contexts/league-play/ranking-service/ports"
)

type boardKey struct {
	userID   string
	position entities.Position
	format   entities.ScoringFormat
}

// Store is the in-memory adapter behind the ranking-service ports. It also
// stands in for the player pool so the module can run without league-data in
// tests.
type Store struct {
	mu sync.RWMutex

	boards map[boardKey]entities.Board
	pools  map[entities.Position][]ports.PoolPlayer

	now time.Time
}

func NewStore(seed []entities.Board) *Store {
	boards := make(map[boardKey]entities.Board, len(seed))
	for _, board := range seed {
		boards[keyFor(board.UserID, board.Position, board.Format)] = board
	}
	return &Store{
		boards: boards,
		pools:  make(map[entities.Position][]ports.PoolPlayer),
		now:    time.Now().UTC(),
	}
}

func keyFor(userID string, position entities.Position, format entities.ScoringFormat) boardKey {
	return boardKey{
		userID:   strings.TrimSpace(userID),
		position: position,
		format:   format,
	}
}

func (s *Store) SetPool(position entities.Position, pool []ports.PoolPlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[position] = append([]ports.PoolPlayer(nil), pool...)
}

func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *Store) SaveBoard(_ context.Context, board entities.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := board
	stored.Entries = append([]entities.RankingEntry(nil), board.Entries...)
	if board.Promotion != nil {
		promotion := *board.Promotion
		stored.Promotion = &promotion
	}
	s.boards[keyFor(board.UserID, board.Position, board.Format)] = stored
	return nil
}

func (s *Store) GetBoard(
	_ context.Context,
	userID string,
	position entities.Position,
	format entities.ScoringFormat,
) (entities.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[keyFor(userID, position, format)]
	if !ok {
		return entities.Board{}, domainerrors.ErrBoardNotFound
	}
	out := board
	out.Entries = append([]entities.RankingEntry(nil), board.Entries...)
	if board.Promotion != nil {
		promotion := *board.Promotion
		out.Promotion = &promotion
	}
	return out, nil
}

func (s *Store) PoolForPosition(
	_ context.Context,
	position entities.Position,
	_ entities.ScoringFormat,
) ([]ports.PoolPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ports.PoolPlayer(nil), s.pools[position]...), nil
}
