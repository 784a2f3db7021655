package ports

import (
	"context"
	"time"

	"gridiron/contexts/league-play/ranking-service/domain/entities"
)

type BoardRepository interface {
	SaveBoard(ctx context.Context, board entities.Board) error
	GetBoard(
		ctx context.Context,
		userID string,
		position entities.Position,
		format entities.ScoringFormat,
	) (entities.Board, error)
}

// PoolPlayer is the projection of a league-data player that seeding needs.
type PoolPlayer struct {
	PlayerID   string
	Projection float64
}

// PlayerPool lists the rankable player pool for a position under a format,
// ordered by descending projection. Fresh boards start in this order.
type PlayerPool interface {
	PoolForPosition(
		ctx context.Context,
		position entities.Position,
		format entities.ScoringFormat,
	) ([]PoolPlayer, error)
}

type Clock interface {
	Now() time.Time
}
