package queries

import (
	"context"
	"sort"
	"strings"

	"gridiron/contexts/league-data/player-service/domain/entities"
	domainerrors "gridiron/contexts/league-data/player-service/domain/errors"
	"gridiron/contexts/league-data/player-service/ports"
)

type PlayerUseCase struct {
	Players ports.PlayerRepository
	Weeks   ports.WeekSource
}

func (uc PlayerUseCase) GetPlayer(ctx context.Context, playerID string) (entities.Player, error) {
	return uc.Players.GetPlayer(ctx, strings.TrimSpace(playerID))
}

// ListByPosition returns the active players eligible for a slot position
// ordered by descending projection for the format. FLEX pools RB, WR, and TE
// together. This ordering seeds fresh ranking boards.
func (uc PlayerUseCase) ListByPosition(
	ctx context.Context,
	position entities.Position,
	format entities.ScoringFormat,
) ([]entities.Player, error) {
	if !entities.IsValidPosition(position) {
		return nil, domainerrors.ErrInvalidPosition
	}
	if !entities.IsValidFormat(format) {
		return nil, domainerrors.ErrInvalidFormat
	}
	var players []entities.Player
	for _, eligible := range entities.EligiblePositions(position) {
		batch, err := uc.Players.ListByPosition(ctx, eligible)
		if err != nil {
			return nil, err
		}
		players = append(players, batch...)
	}
	active := players[:0]
	for _, player := range players {
		if player.Active {
			active = append(active, player)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		pi := active[i].ProjectedPoints(format)
		pj := active[j].ProjectedPoints(format)
		if pi == pj {
			return active[i].PlayerID < active[j].PlayerID
		}
		return pi > pj
	})
	return active, nil
}

// Snapshot returns the full player set keyed by ID, the shape the lineup
// distributor consumes.
func (uc PlayerUseCase) Snapshot(ctx context.Context) (map[string]entities.Player, error) {
	players, err := uc.Players.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[string]entities.Player, len(players))
	for _, player := range players {
		snapshot[player.PlayerID] = player
	}
	return snapshot, nil
}

func (uc PlayerUseCase) CurrentWeek(ctx context.Context) (entities.WeekDescriptor, error) {
	return uc.Weeks.CurrentWeek(ctx)
}
