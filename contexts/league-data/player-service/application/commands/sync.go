package commands

import (
	"context"
	"log/slog"
	"strings"

	application "gridiron/contexts/league-data/player-service/application"
	"gridiron/contexts/league-data/player-service/domain/entities"
	domainerrors "gridiron/contexts/league-data/player-service/domain/errors"
	"gridiron/contexts/league-data/player-service/ports"
)

// SyncResult reports how far a sync run got. Written counts players actually
// persisted before the run stopped; a non-nil error means later batches were
// abandoned, not retried.
type SyncResult struct {
	Week    int
	Total   int
	Written int
}

// SyncUseCase pulls the week descriptor, stat lines, and projections from the
// external feeds and upserts player records in fixed-size sequential batches.
type SyncUseCase struct {
	Players     ports.PlayerRepository
	Weeks       ports.WeekSource
	Stats       ports.StatFeed
	Projections ports.ProjectionFeed
	Clock       ports.Clock
	BatchSize   int
	Logger      *slog.Logger
}

// SyncWeekStats merges the current week's stat lines into the stored player
// set and writes the result back in chunks. A chunk failure aborts the
// remaining chunks and the partial write count is surfaced with the error.
func (uc SyncUseCase) SyncWeekStats(ctx context.Context) (SyncResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	week, err := uc.Weeks.CurrentWeek(ctx)
	if err != nil {
		logger.Error("stat sync week lookup failed",
			"event", "player_sync_week_lookup_failed",
			"module", "league-data/player-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SyncResult{}, err
	}
	if week.Week <= 0 {
		return SyncResult{}, domainerrors.ErrInvalidWeek
	}

	lines, err := uc.Stats.WeekStats(ctx, week.Week)
	if err != nil {
		logger.Error("stat sync feed read failed",
			"event", "player_sync_feed_failed",
			"module", "league-data/player-service",
			"layer", "application",
			"week", week.Week,
			"error", err.Error(),
		)
		return SyncResult{Week: week.Week}, err
	}

	byPlayer := make(map[string]entities.StatLine, len(lines))
	for _, line := range lines {
		byPlayer[strings.TrimSpace(line.PlayerID)] = line
	}

	players, err := uc.Players.ListAll(ctx)
	if err != nil {
		return SyncResult{Week: week.Week}, err
	}

	now := uc.Clock.Now().UTC()
	updated := make([]entities.Player, 0, len(players))
	for _, player := range players {
		line, ok := byPlayer[player.PlayerID]
		if !ok {
			continue
		}
		points := make(map[entities.ScoringFormat]float64, len(line.Points))
		for format, value := range line.Points {
			points[format] = value
		}
		player.WeekStats = points
		player.StatsWeek = week.Week
		player.UpdatedAt = now
		updated = append(updated, player)
	}

	result := SyncResult{Week: week.Week, Total: len(updated)}
	if len(updated) == 0 {
		logger.Info("stat sync found nothing to write",
			"event", "player_sync_noop",
			"module", "league-data/player-service",
			"layer", "application",
			"week", week.Week,
		)
		return result, nil
	}

	limit := uc.BatchSize
	if limit <= 0 {
		limit = 50
	}
	for start := 0; start < len(updated); start += limit {
		end := start + limit
		if end > len(updated) {
			end = len(updated)
		}
		if err := uc.Players.SavePlayers(ctx, updated[start:end]); err != nil {
			logger.Error("stat sync batch write failed",
				"event", "player_sync_batch_failed",
				"module", "league-data/player-service",
				"layer", "application",
				"week", week.Week,
				"written", result.Written,
				"batch_start", start,
				"error", err.Error(),
			)
			return result, err
		}
		result.Written += end - start
	}

	logger.Info("stat sync completed",
		"event", "player_sync_completed",
		"module", "league-data/player-service",
		"layer", "application",
		"week", week.Week,
		"written", result.Written,
	)
	return result, nil
}

// SyncProjections refreshes projection figures for every stored player that
// the feed knows about.
func (uc SyncUseCase) SyncProjections(ctx context.Context) (SyncResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	figures, err := uc.Projections.Projections(ctx)
	if err != nil {
		logger.Error("projection sync feed read failed",
			"event", "player_projection_feed_failed",
			"module", "league-data/player-service",
			"layer", "application",
			"error", err.Error(),
		)
		return SyncResult{}, err
	}

	players, err := uc.Players.ListAll(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	now := uc.Clock.Now().UTC()
	updated := make([]entities.Player, 0, len(players))
	for _, player := range players {
		points, ok := figures[player.PlayerID]
		if !ok {
			continue
		}
		projections := make(map[entities.ScoringFormat]float64, len(points))
		for format, value := range points {
			projections[format] = value
		}
		player.Projections = projections
		player.UpdatedAt = now
		updated = append(updated, player)
	}

	result := SyncResult{Total: len(updated)}
	limit := uc.BatchSize
	if limit <= 0 {
		limit = 50
	}
	for start := 0; start < len(updated); start += limit {
		end := start + limit
		if end > len(updated) {
			end = len(updated)
		}
		if err := uc.Players.SavePlayers(ctx, updated[start:end]); err != nil {
			return result, err
		}
		result.Written += end - start
	}
	return result, nil
}
