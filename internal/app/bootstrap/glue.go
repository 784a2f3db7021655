package bootstrap

import (
	"context"

	playercommands "gridiron/contexts/league-data/player-service/application/commands"
	playerqueries "gridiron/contexts/league-data/player-service/application/queries"
	playerentities "gridiron/contexts/league-data/player-service/domain/entities"
	playerports "gridiron/contexts/league-data/player-service/ports"
	matchupentities "gridiron/contexts/league-play/matchup-service/domain/entities"
	rankingqueries "gridiron/contexts/league-play/ranking-service/application/queries"
	rankingentities "gridiron/contexts/league-play/ranking-service/domain/entities"
	rankingports "gridiron/contexts/league-play/ranking-service/ports"
)

// Cross-context glue. Each adapter translates one context's query surface into
// the port shape a sibling context consumes, keeping the contexts themselves
// free of imports across the boundary.

type rankingSource struct {
	boards rankingqueries.BoardUseCase
}

func (a rankingSource) RankedIDs(
	ctx context.Context,
	userID string,
	position matchupentities.Position,
	format matchupentities.ScoringFormat,
) ([]string, error) {
	return a.boards.OrderedIDs(
		ctx,
		userID,
		rankingentities.Position(position),
		rankingentities.ScoringFormat(format),
	)
}

type playerSource struct {
	players playerqueries.PlayerUseCase
}

func (a playerSource) Snapshot(ctx context.Context) (map[string]matchupentities.PlayerView, error) {
	players, err := a.players.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	views := make(map[string]matchupentities.PlayerView, len(players))
	for id, player := range players {
		views[id] = toPlayerView(player)
	}
	return views, nil
}

func (a playerSource) CurrentWeek(ctx context.Context) (int, error) {
	week, err := a.players.CurrentWeek(ctx)
	if err != nil {
		return 0, err
	}
	return week.Week, nil
}

func toPlayerView(player playerentities.Player) matchupentities.PlayerView {
	projections := make(map[matchupentities.ScoringFormat]float64, len(player.Projections))
	for format, value := range player.Projections {
		projections[matchupentities.ScoringFormat(format)] = value
	}
	var weekStats map[matchupentities.ScoringFormat]float64
	if player.WeekStats != nil {
		weekStats = make(map[matchupentities.ScoringFormat]float64, len(player.WeekStats))
		for format, value := range player.WeekStats {
			weekStats[matchupentities.ScoringFormat(format)] = value
		}
	}
	return matchupentities.PlayerView{
		PlayerID:    player.PlayerID,
		Position:    matchupentities.Position(player.Position),
		Name:        player.FirstName + " " + player.LastName,
		Team:        player.Team,
		Projections: projections,
		WeekStats:   weekStats,
		StatsWeek:   player.StatsWeek,
	}
}

type scheduleSource struct {
	weeks    playerports.WeekSource
	schedule playerports.ScheduleSource
}

func (a scheduleSource) CurrentWeekGames(ctx context.Context) ([]matchupentities.GameView, error) {
	week, err := a.weeks.CurrentWeek(ctx)
	if err != nil {
		return nil, err
	}
	games, err := a.schedule.WeekSchedule(ctx, week.Week)
	if err != nil {
		return nil, err
	}
	views := make([]matchupentities.GameView, 0, len(games))
	for _, game := range games {
		views = append(views, matchupentities.GameView{
			GameID:  game.GameID,
			Kickoff: game.Kickoff,
			Status:  matchupentities.GameStatus(game.Status),
		})
	}
	return views, nil
}

type statRefresher struct {
	sync playercommands.SyncUseCase
}

func (a statRefresher) RefreshStats(ctx context.Context) error {
	_, err := a.sync.SyncWeekStats(ctx)
	return err
}

type playerPool struct {
	players playerqueries.PlayerUseCase
}

func (a playerPool) PoolForPosition(
	ctx context.Context,
	position rankingentities.Position,
	format rankingentities.ScoringFormat,
) ([]rankingports.PoolPlayer, error) {
	players, err := a.players.ListByPosition(
		ctx,
		playerentities.Position(position),
		playerentities.ScoringFormat(format),
	)
	if err != nil {
		return nil, err
	}
	pool := make([]rankingports.PoolPlayer, 0, len(players))
	for _, player := range players {
		pool = append(pool, rankingports.PoolPlayer{
			PlayerID:   player.PlayerID,
			Projection: player.ProjectedPoints(playerentities.ScoringFormat(format)),
		})
	}
	return pool, nil
}
