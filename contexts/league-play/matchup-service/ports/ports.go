package ports

import (
	"context"
	"time"

	"gridiron/contexts/league-play/matchup-service/domain/entities"
	contractsv1 "gridiron/contracts/gen/events/v1"
)

type MatchupRepository interface {
	SaveMatchup(ctx context.Context, matchup entities.Matchup) error
	GetMatchup(ctx context.Context, matchupID string) (entities.Matchup, error)
	GetMatchupByPair(
		ctx context.Context,
		userAID string,
		userBID string,
		format entities.ScoringFormat,
	) (entities.Matchup, error)
	ListActiveMatchups(ctx context.Context) ([]entities.Matchup, error)
}

// RankingSource exposes one user's ranked player-ID list per position. An
// unranked position yields an empty list.
type RankingSource interface {
	RankedIDs(
		ctx context.Context,
		userID string,
		position entities.Position,
		format entities.ScoringFormat,
	) ([]string, error)
}

// PlayerSource exposes the league-data snapshot the distributor scores from.
type PlayerSource interface {
	Snapshot(ctx context.Context) (map[string]entities.PlayerView, error)
	CurrentWeek(ctx context.Context) (int, error)
}

// ScheduleSource reports the current week's scheduled games for the poller.
type ScheduleSource interface {
	CurrentWeekGames(ctx context.Context) ([]entities.GameView, error)
}

// StatRefresher triggers a refresh of the external stat snapshot. The poller
// calls it inside the live polling window.
type StatRefresher interface {
	RefreshStats(ctx context.Context) error
}

type EventEnvelope = contractsv1.Envelope

type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, message OutboxMessage) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
