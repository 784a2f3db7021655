package workers

import (
	"context"
	"log/slog"
	"time"

	application "gridiron/contexts/league-play/matchup-service/application"
	"gridiron/contexts/league-play/matchup-service/application/commands"
	"gridiron/contexts/league-play/matchup-service/domain/entities"
	"gridiron/contexts/league-play/matchup-service/ports"
)

const (
	defaultPrePollWindow  = 2 * time.Hour
	defaultPostPollWindow = 4 * time.Hour
)

// LiveScorePoller drives live scoring across the week's game window. Inside
// the window it refreshes the stat snapshot; once every scheduled game reaches
// a terminal status it finalizes all active matchups.
type LiveScorePoller struct {
	Matchups  ports.MatchupRepository
	Schedule  ports.ScheduleSource
	Refresher ports.StatRefresher
	Finalizer commands.MatchupUseCase
	Clock     ports.Clock
	// PrePollWindow and PostPollWindow pad the polling window around the
	// earliest and latest kickoff. Zero values fall back to the defaults.
	PrePollWindow  time.Duration
	PostPollWindow time.Duration
	Logger         *slog.Logger
}

func (p LiveScorePoller) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(p.Logger)
	now := time.Now().UTC()
	if p.Clock != nil {
		now = p.Clock.Now().UTC()
	}

	games, err := p.Schedule.CurrentWeekGames(ctx)
	if err != nil {
		logger.Error("schedule lookup failed",
			"event", "live_score_schedule_failed",
			"module", "league-play/matchup-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(games) == 0 {
		logger.Debug("no games scheduled this week",
			"event", "live_score_poll_noop",
			"module", "league-play/matchup-service",
			"layer", "worker",
		)
		return nil
	}

	if allTerminal(games) {
		return p.finalizeActive(ctx, logger)
	}

	if !withinPollWindow(now, games, p.prePoll(), p.postPoll()) {
		logger.Debug("outside live polling window",
			"event", "live_score_poll_noop",
			"module", "league-play/matchup-service",
			"layer", "worker",
			"now", now,
		)
		return nil
	}

	if err := p.Refresher.RefreshStats(ctx); err != nil {
		logger.Error("live stat refresh failed",
			"event", "live_score_refresh_failed",
			"module", "league-play/matchup-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	logger.Info("live stat snapshot refreshed",
		"event", "live_score_refreshed",
		"module", "league-play/matchup-service",
		"layer", "worker",
		"game_count", len(games),
	)
	return nil
}

func (p LiveScorePoller) finalizeActive(ctx context.Context, logger *slog.Logger) error {
	active, err := p.Matchups.ListActiveMatchups(ctx)
	if err != nil {
		logger.Error("active matchup listing failed",
			"event", "live_score_finalize_list_failed",
			"module", "league-play/matchup-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if len(active) == 0 {
		return nil
	}

	var firstErr error
	finalized := 0
	for _, matchup := range active {
		if _, err := p.Finalizer.Finalize(ctx, matchup.MatchupID); err != nil {
			// Keep sweeping so one broken matchup does not pin the rest of the
			// week open.
			logger.Error("matchup finalization failed",
				"event", "live_score_finalize_failed",
				"module", "league-play/matchup-service",
				"layer", "worker",
				"matchup_id", matchup.MatchupID,
				"error", err.Error(),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		finalized++
	}
	logger.Info("finalization sweep completed",
		"event", "live_score_finalize_completed",
		"module", "league-play/matchup-service",
		"layer", "worker",
		"finalized_count", finalized,
		"active_count", len(active),
	)
	return firstErr
}

func (p LiveScorePoller) prePoll() time.Duration {
	if p.PrePollWindow > 0 {
		return p.PrePollWindow
	}
	return defaultPrePollWindow
}

func (p LiveScorePoller) postPoll() time.Duration {
	if p.PostPollWindow > 0 {
		return p.PostPollWindow
	}
	return defaultPostPollWindow
}

func allTerminal(games []entities.GameView) bool {
	for _, game := range games {
		if !game.Status.Terminal() {
			return false
		}
	}
	return true
}

// withinPollWindow reports whether now falls between the earliest kickoff
// minus the pre window and the latest kickoff plus the post window. The upper
// bound holds even when stragglers run long; the terminal-status sweep covers
// games that finish after it.
func withinPollWindow(now time.Time, games []entities.GameView, pre, post time.Duration) bool {
	earliest := games[0].Kickoff
	latest := games[0].Kickoff
	for _, game := range games[1:] {
		if game.Kickoff.Before(earliest) {
			earliest = game.Kickoff
		}
		if game.Kickoff.After(latest) {
			latest = game.Kickoff
		}
	}
	open := earliest.Add(-pre)
	until := latest.Add(post)
	return !now.Before(open) && !now.After(until)
}
