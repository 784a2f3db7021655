package ports

import (
	"context"
	"time"

	"gridiron/contexts/league-data/player-service/domain/entities"
)

type PlayerRepository interface {
	SavePlayer(ctx context.Context, player entities.Player) error
	SavePlayers(ctx context.Context, players []entities.Player) error
	GetPlayer(ctx context.Context, playerID string) (entities.Player, error)
	ListByPosition(ctx context.Context, position entities.Position) ([]entities.Player, error)
	ListAll(ctx context.Context) ([]entities.Player, error)
}

// WeekSource reports the current season/week descriptor from the external
// feed.
type WeekSource interface {
	CurrentWeek(ctx context.Context) (entities.WeekDescriptor, error)
}

// ScheduleSource reports the scheduled games for a week.
type ScheduleSource interface {
	WeekSchedule(ctx context.Context, week int) ([]entities.Game, error)
}

// StatFeed reports per-player weekly stat lines already converted to the
// scoring formats.
type StatFeed interface {
	WeekStats(ctx context.Context, week int) ([]entities.StatLine, error)
}

// ProjectionFeed reports third-party projection figures per player per format.
type ProjectionFeed interface {
	Projections(ctx context.Context) (map[string]map[entities.ScoringFormat]float64, error)
}

type Clock interface {
	Now() time.Time
}
