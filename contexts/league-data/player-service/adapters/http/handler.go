package httpadapter

import (
	"context"
	"log/slog"

	"gridiron/contexts/league-data/player-service/application/commands"
	"gridiron/contexts/league-data/player-service/application/queries"
	"gridiron/contexts/league-data/player-service/domain/entities"
	httptransport "gridiron/contexts/league-data/player-service/transport/http"
)

type Handler struct {
	Players queries.PlayerUseCase
	Sync    commands.SyncUseCase
	Logger  *slog.Logger
}

func (h Handler) GetPlayerHandler(ctx context.Context, playerID string) (httptransport.PlayerResponse, error) {
	player, err := h.Players.GetPlayer(ctx, playerID)
	if err != nil {
		return httptransport.PlayerResponse{}, err
	}
	return toPlayerResponse(player), nil
}

func (h Handler) ListPlayersHandler(
	ctx context.Context,
	position string,
	format string,
) (httptransport.PlayerListResponse, error) {
	players, err := h.Players.ListByPosition(ctx, entities.Position(position), entities.ScoringFormat(format))
	if err != nil {
		return httptransport.PlayerListResponse{}, err
	}
	out := httptransport.PlayerListResponse{
		Position: position,
		Format:   format,
		Players:  make([]httptransport.PlayerResponse, 0, len(players)),
	}
	for _, player := range players {
		out.Players = append(out.Players, toPlayerResponse(player))
	}
	return out, nil
}

func (h Handler) CurrentWeekHandler(ctx context.Context) (httptransport.WeekResponse, error) {
	week, err := h.Players.CurrentWeek(ctx)
	if err != nil {
		return httptransport.WeekResponse{}, err
	}
	return httptransport.WeekResponse{
		Season: week.Season,
		Week:   week.Week,
		Phase:  string(week.Phase),
	}, nil
}

func toPlayerResponse(player entities.Player) httptransport.PlayerResponse {
	projections := make(map[string]float64, len(player.Projections))
	for format, value := range player.Projections {
		projections[string(format)] = value
	}
	weekStats := make(map[string]float64, len(player.WeekStats))
	for format, value := range player.WeekStats {
		weekStats[string(format)] = value
	}
	return httptransport.PlayerResponse{
		PlayerID:    player.PlayerID,
		Position:    string(player.Position),
		FirstName:   player.FirstName,
		LastName:    player.LastName,
		Team:        player.Team,
		Active:      player.Active,
		Projections: projections,
		WeekStats:   weekStats,
		StatsWeek:   player.StatsWeek,
	}
}
